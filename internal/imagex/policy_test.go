// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package imagex

import "testing"

func TestSelectPolicy(t *testing.T) {
	tests := []struct {
		token string
		want  SavePolicy
	}{
		{"jpg", SavePolicy{Format: "jpg", Quality: 90, QualityApplies: true, RequiresOpaque: true}},
		{"jpeg", SavePolicy{Format: "jpeg", Quality: 90, QualityApplies: true, RequiresOpaque: true}},
		{".JPG", SavePolicy{Format: "jpg", Quality: 90, QualityApplies: true, RequiresOpaque: true}},
		{"png", SavePolicy{Format: "png", Lossless: true}},
		{"PNG", SavePolicy{Format: "png", Lossless: true}},
		{"webp", SavePolicy{Format: "webp", Quality: 90, QualityApplies: true}},
		{"gif", SavePolicy{Format: "gif", Lossless: true}},
		{"tiff", SavePolicy{Format: "tiff", Quality: 90, QualityApplies: true}},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got := SelectPolicy(tt.token, 90)
			if got != tt.want {
				t.Errorf("SelectPolicy(%q, 90) = %+v, want %+v", tt.token, got, tt.want)
			}
		})
	}
}

func TestSelectPolicyDropsQualityForLossless(t *testing.T) {
	for _, token := range []string{"png", "gif"} {
		p := SelectPolicy(token, 42)
		if p.QualityApplies || p.Quality != 0 {
			t.Errorf("SelectPolicy(%q) should drop quality, got %+v", token, p)
		}
	}
}
