package chat

import "testing"

func TestNormalizeMessage(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"under 15 rm", "under 15 myr"},
		{"20 RINGGIT please", "20 myr please"},
		{"mee goreng", "noodle goreng"},
		{"Sambal chicken", "spicy chicken"},
		{"rendang with telur", "beef with egg"},
		{"spagetti bolognese", "spaghetti bolognese"},
		// 詞中的子字串不得被替換
		{"perform well", "perform well"},
		{"i am armed with information", "i am armed with information"},
	}

	for _, tt := range tests {
		if got := NormalizeMessage(tt.in); got != tt.want {
			t.Errorf("NormalizeMessage(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeIngredient(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"chiken", "chicken"},
		{"DAGING", "meat"},
		{"aym", "chicken"},
		{"telor", "egg"},
		{"keju", "cheese"},
		{"ikan", "fish"},
		// 查無別名：回傳小寫原詞
		{"Tofu", "tofu"},
	}

	for _, tt := range tests {
		if got := NormalizeIngredient(tt.in); got != tt.want {
			t.Errorf("NormalizeIngredient(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
