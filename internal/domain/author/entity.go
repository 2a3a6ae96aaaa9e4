package author

// Author 作者实体
// 设计说明:
// 1. 作者数据由外部种子导入,没有创建/更新接口,实体视为不可变
// 2. Biography为可选字段,空字符串表示未填写
// 3. 删除作者不会级联删除其图书(孤儿引用是被容忍的)
type Author struct {
	ID        uint
	FirstName string
	LastName  string
	Biography string
}
