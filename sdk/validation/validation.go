// Package validation holds request validation and small pointer helpers
// shared by the repositories and the HTTP bridges.
package validation

func StringPtr(s string) *string {
	return &s
}

func IntPtr(i int) *int {
	return &i
}

func Int32Ptr(i int32) *int32 {
	return &i
}

func Int64Ptr(i int64) *int64 {
	return &i
}

func Float64Ptr(f float64) *float64 {
	return &f
}

func BoolPtr(b bool) *bool {
	return &b
}

// StringPtrIfNotEmpty returns a pointer to s, or nil when s is empty.
func StringPtrIfNotEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// GetStringOrEmpty returns the string value or an empty string if nil
func GetStringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Coalesce returns update when it is set, otherwise current.
func Coalesce[T any](current T, update *T) T {
	if update == nil {
		return current
	}
	return *update
}

// CoalescePtr is Coalesce for nullable fields: a supplied update replaces
// the current pointer with a copy of its value.
func CoalescePtr[T any](current *T, update *T) *T {
	if update == nil {
		return current
	}
	v := *update
	return &v
}
