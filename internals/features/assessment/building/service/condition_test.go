package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDamage(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"nol", 0, ConditionBaik},
		{"tengah bucket baik", 0.05, ConditionBaik},
		{"batas atas baik inklusif", 0.10, ConditionBaik},
		{"tepat di atas baik", 0.101, ConditionRusakRingan},
		{"contoh rusak ringan", 0.25, ConditionRusakRingan},
		{"batas atas rusak ringan inklusif", 0.30, ConditionRusakRingan},
		{"tepat di atas rusak ringan", 0.301, ConditionRusakSedang},
		{"batas atas rusak sedang inklusif", 0.65, ConditionRusakSedang},
		{"tepat di atas rusak sedang", 0.651, ConditionRusakBerat},
		{"maksimum", 1.0, ConditionRusakBerat},
		{"di luar rentang bawah", -0.5, ConditionBaik},
		{"di luar rentang atas", 2.0, ConditionRusakBerat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyDamage(tt.value))
		})
	}
}

// Naik nilai kerusakan tidak pernah menurunkan tingkat bucket.
func TestClassifyDamageMonotonic(t *testing.T) {
	rank := map[string]int{
		ConditionBaik:        0,
		ConditionRusakRingan: 1,
		ConditionRusakSedang: 2,
		ConditionRusakBerat:  3,
	}

	prev := rank[ClassifyDamage(0)]
	for v := 0.0; v <= 1.0; v += 0.001 {
		cur, ok := rank[ClassifyDamage(v)]
		assert.True(t, ok, "label tidak dikenal pada %f", v)
		assert.GreaterOrEqual(t, cur, prev, "bucket turun pada %f", v)
		prev = cur
	}
}
