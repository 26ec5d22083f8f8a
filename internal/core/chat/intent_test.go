package chat

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		message string
		want    Intent
	}{
		// 重置優先於所有其他意圖
		{"please reset everything", IntentReset},
		{"reset and recommend some food", IntentReset},
		{"let's start over", IntentReset},

		// 天數計畫
		{"plan for 3 days", IntentDayPlan},
		{"plan meals for a week", IntentDayPlan},
		// 「N meals」由天數計畫先搶走
		{"recommend 3 meals", IntentDayPlan},

		// 餐數計畫
		{"suggest 4 spicy", IntentMealPlan},

		// 食物請求
		{"i want something spicy", IntentFood},
		{"what is on the menu", IntentFood},
		{"under 20", IntentFood},

		// 追加推薦
		{"something else", IntentFollowUp},
		{"another one", IntentFollowUp},

		// 閒聊後備
		{"why is the sky blue", IntentFallback},
	}

	for _, tt := range tests {
		prefs := Extract(tt.message)
		if got := Classify(tt.message, prefs); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.message, got, tt.want)
		}
	}
}

func TestPlanDays(t *testing.T) {
	tests := []struct {
		message string
		days    int
		ok      bool
	}{
		{"plan for 3 days", 3, true},
		{"give me 1 day of food", 1, true},
		{"recommend 5 meals", 5, true},
		{"plan my week", 7, true},
		{"weekly plan please", 7, true},
		{"what should i eat tomorrow", 0, false},
	}

	for _, tt := range tests {
		days, ok := PlanDays(tt.message)
		if days != tt.days || ok != tt.ok {
			t.Errorf("PlanDays(%q) = (%d, %v), want (%d, %v)", tt.message, days, ok, tt.days, tt.ok)
		}
	}
}

func TestIsResetRequest(t *testing.T) {
	if !IsResetRequest("CLEAR my preferences") {
		t.Error("expected reset for 'CLEAR my preferences'")
	}
	if IsResetRequest("i want noodles") {
		t.Error("unexpected reset for 'i want noodles'")
	}
}

func TestIsFoodRequest(t *testing.T) {
	for _, msg := range []string{
		"something halal please",
		"i want to eat",
		"drinks?",
		"cheapest you have",
		"15 myr budget",
	} {
		if !IsFoodRequest(msg) {
			t.Errorf("IsFoodRequest(%q) = false, want true", msg)
		}
	}
	if IsFoodRequest("tell me a joke") {
		t.Error("IsFoodRequest(\"tell me a joke\") = true, want false")
	}
}

func TestIsFollowUpRequest(t *testing.T) {
	if !IsFollowUpRequest("got anything else?") {
		t.Error("expected follow-up for 'got anything else?'")
	}
	if IsFollowUpRequest("hello") {
		t.Error("unexpected follow-up for 'hello'")
	}
}
