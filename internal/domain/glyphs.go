package domain

import "tombs-server/internal/core/types"

// Упакованные глифы для сущностей, создаваемых вне генератора.
var (
	// CorpseGlyph - то, во что превращается любая убитая сущность.
	CorpseGlyph = types.MakeGlyph(0x8B0000, '%')
)
