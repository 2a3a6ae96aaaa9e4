package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kohyli/bookstore/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明:
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数(MaxOpenConns、MaxIdleConns、ConnMaxLifetime)
// 3. 开发环境开启SQL日志,生产环境关闭
// 4. 自动迁移表结构(AutoMigrate)
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			// 全库统一UTC,月度统计的时间窗口依赖这一点
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("✓ database connected")

	// 注意:生产环境应使用专门的迁移工具(如golang-migrate)
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
// 注意:这里使用GORM的模型定义(带tag),不是domain层的实体
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&AuthorModel{},
		&BookModel{},
		&UserModel{},
		&OrderModel{},
		&OrderItemModel{},
		&ReviewModel{},
	)
}

// AuthorModel GORM作者模型
type AuthorModel struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"size:100;not null"`
	LastName  string `gorm:"size:100;not null"`
	Biography string `gorm:"type:text"`
}

// TableName 指定表名
func (AuthorModel) TableName() string {
	return "authors"
}

// BookModel GORM图书模型
// 设计说明:
// 1. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 2. ISBN有唯一索引,防止重复
// 3. AuthorID关联authors表,支持Preload与按作者查询
type BookModel struct {
	ID            uint         `gorm:"primaryKey"`
	Title         string       `gorm:"index;size:200;not null"`
	AuthorID      uint         `gorm:"index;not null"`
	ISBN          string       `gorm:"uniqueIndex;size:20;not null"`
	Price         int64        `gorm:"not null"` // 单位:分
	PublishedDate time.Time    `gorm:"type:date"`
	Description   string       `gorm:"type:text"`
	Stock         int          `gorm:"not null;default:0"`
	CoverImageURL string       `gorm:"size:500"`
	Author        *AuthorModel `gorm:"foreignKey:AuthorID"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// UserModel GORM用户模型
// 设计说明:
// 1. 这是infrastructure层的数据模型,包含GORM tag
// 2. domain/user/entity.go是领域实体,不依赖GORM
// 3. Repository负责两者之间的转换
// 4. 删除账户是硬删除(订单保留,通过UserID引用,孤儿引用被容忍)
type UserModel struct {
	ID        uint      `gorm:"primaryKey"`
	Email     string    `gorm:"uniqueIndex;size:100;not null"`
	Password  string    `gorm:"size:255;not null"` // bcrypt哈希
	FirstName string    `gorm:"size:100;not null"`
	LastName  string    `gorm:"size:100;not null"`
	CreatedAt time.Time `gorm:""`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}

// OrderModel GORM订单模型
// 设计说明:
// 1. 与OrderItemModel是一对多关系,删除订单级联删除明细
// 2. Status存储规范字符串Token;历史数据中存在"New"与大小写
//    不一致的写法,读取路径统一经ParseStatus翻译
// 3. (user_id, order_date)与(status, order_date)分别服务
//    "我的订单"与月度销量统计
type OrderModel struct {
	ID        uint             `gorm:"primaryKey"`
	UserID    uint             `gorm:"index:idx_user_date;not null"`
	OrderDate time.Time        `gorm:"index:idx_user_date;index:idx_status_date;not null"`
	Total     int64            `gorm:"not null"` // 单位:分
	Status    string           `gorm:"index:idx_status_date;size:20;not null"`
	Items     []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName 指定表名
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel GORM订单明细模型
// 设计说明:
// 1. PriceAtPurchase记录下单时的价格快照,图书改价不影响历史订单
// 2. BookID不设外键约束,图书被删除后明细仍然有效
type OrderItemModel struct {
	ID              uint  `gorm:"primaryKey"`
	OrderID         uint  `gorm:"index;not null"`
	BookID          uint  `gorm:"index;not null"`
	Quantity        int   `gorm:"not null"`
	PriceAtPurchase int64 `gorm:"not null"` // 单位:分
}

// TableName 指定表名
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ReviewModel GORM书评模型
// 说明:表结构保留用于数据迁移兼容,书评读写接口尚未开放
type ReviewModel struct {
	ID         uint      `gorm:"primaryKey"`
	BookID     uint      `gorm:"index;not null"`
	UserID     uint      `gorm:"index;not null"`
	Rating     int       `gorm:"not null"` // 1-5
	Comment    string    `gorm:"type:text"`
	ReviewDate time.Time `gorm:""`
}

// TableName 指定表名
func (ReviewModel) TableName() string {
	return "reviews"
}
