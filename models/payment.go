package models

type PaymentMethod struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	MethodName  string `gorm:"size:100;not null" json:"method_name"`
	QRCodeImage string `gorm:"size:255" json:"qr_code_image"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
	Notes       string `gorm:"type:text" json:"notes"`
}
