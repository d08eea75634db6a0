package brand

// TitlePageProfile holds the adaptive sizing parameters for the cover
// page. Sizes are in half-points, spacings in twips, matching the
// conventions of the reference documents.
type TitlePageProfile struct {
	LogoSize          int
	LogoAfter         int
	TitleSpacerBefore int
	TitleSize         int
	DebriefAfter      int
	SubtitleSize      int
	SubtitleAfter     int
	CompanyHeaderSize int
	CompanyAfter      int
	ParticipantSize   int
	ParticipantAfter  int
	FooterBefore      int
	FooterTitleSize   int
	DateSize          int
}

// The three cover profiles. Large participant rosters and long
// company names step down to keep the cover on one page.
var (
	ProfileDefault = TitlePageProfile{
		LogoSize: 54, LogoAfter: 300, TitleSpacerBefore: 500, TitleSize: 72,
		DebriefAfter: 240, SubtitleSize: 44, SubtitleAfter: 320,
		CompanyHeaderSize: 20, CompanyAfter: 70, ParticipantSize: 20, ParticipantAfter: 20,
		FooterBefore: 420, FooterTitleSize: 24, DateSize: 20,
	}

	ProfileMedium = TitlePageProfile{
		LogoSize: 48, LogoAfter: 240, TitleSpacerBefore: 300, TitleSize: 64,
		DebriefAfter: 180, SubtitleSize: 40, SubtitleAfter: 240,
		CompanyHeaderSize: 18, CompanyAfter: 50, ParticipantSize: 18, ParticipantAfter: 14,
		FooterBefore: 300, FooterTitleSize: 22, DateSize: 18,
	}

	ProfileCompact = TitlePageProfile{
		LogoSize: 42, LogoAfter: 180, TitleSpacerBefore: 200, TitleSize: 56,
		DebriefAfter: 120, SubtitleSize: 36, SubtitleAfter: 180,
		CompanyHeaderSize: 16, CompanyAfter: 40, ParticipantSize: 16, ParticipantAfter: 10,
		FooterBefore: 200, FooterTitleSize: 20, DateSize: 16,
	}
)

// Profile thresholds.
const (
	compactParticipants = 20
	compactNameLength   = 40
	mediumParticipants  = 14
	mediumNameLength    = 30
)

// ProfileFor selects the cover sizing profile from the total
// participant count and the company name length.
func ProfileFor(participantCount, companyNameLength int) TitlePageProfile {
	if participantCount > compactParticipants || companyNameLength > compactNameLength {
		return ProfileCompact
	}
	if participantCount > mediumParticipants || companyNameLength > mediumNameLength {
		return ProfileMedium
	}
	return ProfileDefault
}
