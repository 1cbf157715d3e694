package response

const (
	MessageSuccess = "Success"

	InternalServerErrorCode = 500
	DefaultErrorMessage     = "Something went wrong"

	DateTimeFormat = "2006-01-02 15:04:05"
)
