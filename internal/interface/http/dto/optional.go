package dto

import (
	"bytes"

	"github.com/goccy/go-json"
)

// Optional 区分PUT请求体中字段的三种状态：
//   - 未出现：Set=false
//   - 显式null：Set=true, Null=true
//   - 有值：Set=true, Value为解码后的值
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// UnmarshalJSON 只有字段出现在JSON中时才会被调用
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// Ptr 有值时返回指向值的指针，null返回nil
func (o Optional[T]) Ptr() *T {
	if o.Null {
		return nil
	}
	v := o.Value
	return &v
}
