package exitcode

const (
	Success    = 0
	UsageError = 1
	ParseFail  = 2
)
