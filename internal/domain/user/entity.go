package user

import (
	"time"
)

// User 用户实体(聚合根)
// 设计说明:
// 1. 密码只保存bcrypt哈希值,实体上不提供任何暴露明文的方法
// 2. 领域实体不依赖GORM tag(infrastructure层的Repository实现负责映射)
type User struct {
	ID        uint
	Email     string
	Password  string // bcrypt哈希值
	FirstName string
	LastName  string
	CreatedAt time.Time
}

// NewUser 创建新用户(工厂方法)
// hashedPassword必须是bcrypt加密后的密码
func NewUser(email, hashedPassword, firstName, lastName string) *User {
	return &User{
		Email:     email,
		Password:  hashedPassword,
		FirstName: firstName,
		LastName:  lastName,
		CreatedAt: time.Now().UTC(),
	}
}

// FullName 返回展示用姓名
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
