package service

// Label kondisi kerusakan hasil klasifikasi nilai fuzzy.
const (
	ConditionBaik        = "Baik"
	ConditionRusakRingan = "Rusak Ringan"
	ConditionRusakSedang = "Rusak Sedang"
	ConditionRusakBerat  = "Rusak Berat"
)

// ClassifyDamage memetakan nilai kerusakan [0,1] ke label kondisi.
// Batas atas inklusif; nilai di luar rentang jatuh ke bucket terdekat.
func ClassifyDamage(value float64) string {
	switch {
	case value <= 0.10:
		return ConditionBaik
	case value <= 0.30:
		return ConditionRusakRingan
	case value <= 0.65:
		return ConditionRusakSedang
	default:
		return ConditionRusakBerat
	}
}
