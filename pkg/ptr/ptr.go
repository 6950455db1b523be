package ptr

// Ptr возвращает указатель на значение
// Удобно для опциональных полей: ptr.Ptr(int64(5))
func Ptr[T any](v T) *T {
	return &v
}

// Deref разыменовывает указатель, возвращая дефолт для nil
func Deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
