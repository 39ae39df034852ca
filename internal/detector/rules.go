package detector

// Sale type categories, ordered from most to least specific
const (
	SaleTypeClearance   = "clearance"
	SaleTypeRefurb      = "refurb"
	SaleTypeSeasonOff   = "season_off"
	SaleTypeMembersOnly = "members_only"
)

// SaleTypeRule maps one category to its trigger phrases. Slice position
// is match priority.
type SaleTypeRule struct {
	Type    string
	Phrases []string
}

// RuleSet holds every phrase list the detectors match against. The
// detectors take their rules as explicit parameters, so callers and
// tests control the lists; DefaultRules supplies the stock set.
type RuleSet struct {
	// Keywords signal a running sale. Order is match priority.
	Keywords []string

	// MembersOnly phrases signal a login/membership gate. Kept as a
	// separate list so deployments can drop ambiguous phrases.
	MembersOnly []string

	// SaleTypes are scanned in order; the first category with a
	// matching phrase wins.
	SaleTypes []SaleTypeRule
}

// DefaultRules returns the stock rule set for Korean retail pages.
func DefaultRules() RuleSet {
	return RuleSet{
		Keywords: []string{
			"SALE", "세일", "할인", "OFF", "%", "UP TO", "EVENT", "프로모션", "특가",
		},
		// Strong signals only; a bare "LOGIN" matched too many
		// storefronts that simply have a login button.
		MembersOnly: []string{
			"MEMBERS ONLY",
			"MEMBER ONLY",
			"회원전용",
			"회원 전용",
			"회원공개",
			"로그인 후",
			"SIGN IN",
		},
		SaleTypes: []SaleTypeRule{
			{Type: SaleTypeClearance, Phrases: []string{"CLEARANCE", "클리어런스", "FINAL SALE", "OUTLET", "아울렛"}},
			{Type: SaleTypeRefurb, Phrases: []string{"REFURB", "리퍼브", "B-GRADE", "B GRADE", "B급", "리퍼"}},
			{Type: SaleTypeSeasonOff, Phrases: []string{"SEASON OFF", "SEASON-OFF", "SEASONOFF", "시즌오프", "시즌 오프"}},
			{Type: SaleTypeMembersOnly, Phrases: []string{"MEMBERS ONLY", "회원전용", "회원 전용", "회원공개"}},
		},
	}
}
