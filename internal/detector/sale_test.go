package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectSale(t *testing.T) {
	keywords := []string{"SALE", "세일", "UP TO"}

	testCases := []struct {
		name        string
		text        string
		expectSale  bool
		expectMatch string
	}{
		{
			name:        "uppercase keyword matches lowercase text",
			text:        "mega sale this weekend",
			expectSale:  true,
			expectMatch: "SALE",
		},
		{
			name:        "uppercase keyword matches mixed-case text",
			text:        "Mega SaLe this weekend",
			expectSale:  true,
			expectMatch: "SALE",
		},
		{
			name:        "cjk keyword matches by exact substring",
			text:        "겨울 세일 진행중",
			expectSale:  true,
			expectMatch: "세일",
		},
		{
			name:       "no keyword present",
			text:       "새로운 컬렉션 출시",
			expectSale: false,
		},
		{
			name:        "first match wins over later keywords",
			text:        "세일 sale up to 50",
			expectSale:  true,
			expectMatch: "SALE",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			isSale, matched := DetectSale(tc.text, keywords)
			assert.Equal(t, tc.expectSale, isSale)
			assert.Equal(t, tc.expectMatch, matched)
		})
	}
}

func TestDetectSaleSkipsBlankKeywords(t *testing.T) {
	isSale, matched := DetectSale("big sale", []string{"", "   ", "SALE"})
	assert.True(t, isSale)
	assert.Equal(t, "SALE", matched)
}

func TestDetectSaleKeywordOrderIsPriority(t *testing.T) {
	// Both keywords occur; the earlier one is reported even though the
	// later one appears first in the text.
	isSale, matched := DetectSale("특가 그리고 할인", []string{"할인", "특가"})
	assert.True(t, isSale)
	assert.Equal(t, "할인", matched)
}

func TestDetectMembersOnly(t *testing.T) {
	phrases := DefaultRules().MembersOnly

	assert.True(t, DetectMembersOnly("members only preview", phrases))
	assert.True(t, DetectMembersOnly("이 상품은 회원전용 입니다", phrases))
	assert.True(t, DetectMembersOnly("로그인 후 구매 가능", phrases))
	assert.False(t, DetectMembersOnly("누구나 구매 가능", phrases))

	// The phrase list is injected, not hardcoded; a trimmed list stops
	// matching what it no longer carries.
	assert.False(t, DetectMembersOnly("members only preview", []string{"회원전용"}))
}
