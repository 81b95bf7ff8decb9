package usecase

// Export unexported functions for testing
var (
	WaitContextForTest = waitContext
)
