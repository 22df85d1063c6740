package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrProductNotFound = errors.New("product not found")

type Product struct {
	ID          uint            `gorm:"primarykey" json:"id"`
	Name        string          `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Description string          `gorm:"column:description;type:text;not null" json:"description"`
	Price       decimal.Decimal `gorm:"column:price;type:decimal(10,2);not null" json:"price"`
	Category    string          `gorm:"column:category;type:varchar(50);not null;index" json:"category"`

	ImageURL    string `gorm:"column:image_url;type:varchar(500);not null" json:"image_url"`
	ImageSource string `gorm:"column:image_source;type:varchar(100);not null" json:"image_source"`
	VideoURL    string `gorm:"column:video_url;type:varchar(500)" json:"video_url,omitempty"`
	VideoSource string `gorm:"column:video_source;type:varchar(100)" json:"video_source,omitempty"`
	AudioURL    string `gorm:"column:audio_url;type:varchar(500)" json:"audio_url,omitempty"`
	AudioSource string `gorm:"column:audio_source;type:varchar(100)" json:"audio_source,omitempty"`

	Featured      bool      `gorm:"column:featured;not null;default:false" json:"featured"`
	InStock       bool      `gorm:"column:in_stock;not null;default:true" json:"in_stock"`
	StockQuantity int       `gorm:"column:stock_quantity;not null;default:1" json:"stock_quantity"`
	CreatedAt     time.Time `json:"created_at"`
}

func (Product) TableName() string { return "products" }

// Available reports effective availability. The in_stock flag is advisory
// and can disagree with the counter, so both are checked.
func (p *Product) Available() bool {
	return p.InStock && p.StockQuantity > 0
}
