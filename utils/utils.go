package utils

// StringPtr returns a pointer to the given string, for APIs that take
// optional string fields.
func StringPtr(s string) *string {
	return &s
}
