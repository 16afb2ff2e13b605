// Package entity defines the domain models for the symbollist feature.
package entity

import "time"

// Symbol はビューアで選択可能な銘柄を表します。
// 画面のドロップダウンに出す表示名と、取り込みジョブの対象判定に使う
// 有効フラグ・表示順を持ちます。
type Symbol struct {
	ID        uint      `gorm:"primaryKey"`
	Code      string    `gorm:"size:20;not null;uniqueIndex"`
	Name      string    `gorm:"size:255;not null"`
	Exchange  string    `gorm:"size:100;not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	SortKey   int       `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
