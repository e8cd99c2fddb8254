package domain

// Параметры восприятия
const (
	// VisionRadius — радиус поля зрения (евклидова метрика).
	// Один и тот же радиус используется и игроком, и монстрами,
	// чтобы агрессия была честной: кто видит, того видно.
	VisionRadius = 10
)

// Параметры эффектов свитков
const (
	HealAmount = 40

	LightningDamage = 40
	LightningRange  = 5

	ConfuseRange    = 8
	ConfuseDuration = 5

	FireballRadius = 3
	FireballDamage = 25
)

// Прокачка
const (
	LevelUpBase   = 200
	LevelUpFactor = 150
	LevelUpHPGain = 20
)

// InventoryCapacity — максимум слотов в рюкзаке игрока.
const InventoryCapacity = 26
