package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

const (
	// LogMsgWorkerJobFailed is logged when a worker fails to process a job
	LogMsgWorkerJobFailed = "Worker job failed"

	// LogMsgWorkerPanic is logged when a job panics; the worker keeps running
	LogMsgWorkerPanic = "Worker job panicked"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgQueueFull   = "worker queue is full"
	ErrMsgPoolStopped = "worker pool is stopped"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount      = 2
	TestQueueSize        = 10
	TestExpectedJobCount = 2
)
