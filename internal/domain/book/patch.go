package book

// Opt 可选字段：未设置 或 设置为某个值
// 对指针类型的字段，Set(nil)表示显式清空
type Opt[T any] struct {
	set   bool
	value T
}

// Set 构造已设置的字段
func Set[T any](v T) Opt[T] {
	return Opt[T]{set: true, value: v}
}

// Get 返回值以及是否设置
func (o Opt[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet 是否设置
func (o Opt[T]) IsSet() bool {
	return o.set
}

// Patch 图书部分更新
type Patch struct {
	Title         Opt[string]
	Author        Opt[string]
	Genre         Opt[*string]
	YearPublished Opt[*int]
	Summary       Opt[*string]
}

// IsEmpty 没有任何字段需要修改
func (p Patch) IsEmpty() bool {
	return len(p.Fields()) == 0
}

// Fields 本次修改的字段名（与JSON字段一致）
func (p Patch) Fields() []string {
	var fields []string
	if p.Title.IsSet() {
		fields = append(fields, "title")
	}
	if p.Author.IsSet() {
		fields = append(fields, "author")
	}
	if p.Genre.IsSet() {
		fields = append(fields, "genre")
	}
	if p.YearPublished.IsSet() {
		fields = append(fields, "year_published")
	}
	if p.Summary.IsSet() {
		fields = append(fields, "summary")
	}
	return fields
}

// TouchesIdentity 是否修改了唯一键(title, author)
func (p Patch) TouchesIdentity() bool {
	return p.Title.IsSet() || p.Author.IsSet()
}
