package response

var (
	ErrInvalidRequestFormat = ErrorResponse{
		Status:  "error",
		Error:   "invalid_request",
		Details: "Invalid request format",
	}

	ErrMissingPublicID = ErrorResponse{
		Status:  "error",
		Error:   "missing_public_id",
		Details: "Missing public_id",
	}

	ErrDeletionFailed = ErrorResponse{
		Status:  "error",
		Error:   "deletion_failed",
		Details: "Deletion failed",
	}
)
