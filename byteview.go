package lrucache

// ByteView 一个不可变的字节数组视图
type ByteView struct {
	b []byte
}

func NewByteView(b []byte) ByteView {
	return ByteView{
		b: b,
	}
}

func (v ByteView) Len() int {
	return len(v.b)
}

func (v ByteView) ByteSlice() []byte {
	return cloneBytes(v.b)
}

func (v ByteView) String() string {
	return string(v.b)
}

func cloneBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
