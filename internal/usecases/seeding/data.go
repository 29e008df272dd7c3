package seeding

import "github.com/vfg2006/advision-api/internal/domain"

// Level é o perfil de desempenho simulado de uma campanha
type Level string

const (
	LevelHigh   Level = "high"
	LevelMedium Level = "medium"
	LevelLow    Level = "low"
)

type demoUser struct {
	Email    string
	Password string
	Role     domain.Role
}

var demoUsers = []demoUser{
	{Email: "demo@advision.com", Password: "demo123", Role: domain.RoleAdmin},
	{Email: "admin@advision.com", Password: "admin123", Role: domain.RoleAdmin},
	{Email: "test@advision.com", Password: "test123", Role: domain.RoleEditor},
}

// DemoEmails lista os usuários criados pela geração de dados de demonstração
func DemoEmails() []string {
	emails := make([]string, 0, len(demoUsers))
	for _, u := range demoUsers {
		emails = append(emails, u.Email)
	}
	return emails
}

type demoAPIKey struct {
	Type           domain.APIType
	Name           string
	AccountID      string
	DeveloperToken string
}

var demoAPIKeys = []demoAPIKey{
	{Type: domain.APIGoogleAds, Name: "My Google Ads Account", AccountID: "demo-google-ads-123", DeveloperToken: "demo-dev-token-xxx"},
	{Type: domain.APIFacebookAds, Name: "Main Facebook Business", AccountID: "act_demo_456"},
	{Type: domain.APIInstagramAds, Name: "Instagram Business Account", AccountID: "ig_demo_789"},
	{Type: domain.APILinkedInAds, Name: "LinkedIn Campaign Manager", AccountID: "li_demo_101"},
}

type demoCampaign struct {
	Title       string
	Description string
	Platform    domain.Platform
	Budget      int64
	DaysAgo     int
	Level       Level
}

var demoCampaigns = []demoCampaign{
	{"Summer Sale 2024 - Fashion Collection", "Promote summer fashion collection with 30% discount", domain.PlatformInstagram, 5000, 45, LevelHigh},
	{"New Product Launch - Eco Water Bottles", "Launch revolutionary eco-friendly water bottles", domain.PlatformFacebook, 8000, 38, LevelMedium},
	{"Brand Awareness - Millennial Targeting", "Increase brand visibility among millennials 25-35", domain.PlatformYouTube, 10000, 30, LevelHigh},
	{"Holiday Special - Black Friday Deals", "Black Friday early access deals and promotions", domain.PlatformTikTok, 6000, 25, LevelLow},
	{"LinkedIn B2B Campaign", "Target business professionals for enterprise solutions", domain.PlatformLinkedIn, 7500, 20, LevelMedium},
	{"Spring Collection Preview", "Early access to new spring collection", domain.PlatformInstagram, 4500, 15, LevelHigh},
	{"Tech Product Demo Campaign", "Showcase product features and benefits", domain.PlatformYouTube, 9000, 10, LevelMedium},
}

var adTemplates = map[domain.Platform][]string{
	domain.PlatformInstagram: {
		"🌊 Dive into Summer Savings! Get 30% OFF on all beachwear. Limited time! #SummerSale #BeachReady",
		"Summer vibes only! 🏖️ Refresh your wardrobe with our hottest collection. Link in bio! #FashionDeals",
		"☀️ Sun's out, deals are out! Exclusive summer sale - 30% OFF everything. #ShopNow",
	},
	domain.PlatformFacebook: {
		"Introducing the future of hydration 💧 Our eco-bottles keep drinks cold for 24hrs. Pre-order now!",
		"🌱 Sustainable. Stylish. Superior. Meet the water bottle that does it all.",
		"Say goodbye to single-use plastics! Premium stainless steel bottles built to last.",
	},
	domain.PlatformYouTube: {
		"Join thousands who trust our brand. Premium quality. Affordable prices. Exceptional service.",
		"Why choose us? Award-winning products, 5-star service, 100,000+ happy customers.",
		"Transform your lifestyle with our innovative solutions. Watch real testimonials today.",
	},
	domain.PlatformTikTok: {
		"🔥 Black Friday came early! Shop now before it's gone. Swipe up! #BlackFriday #Deals",
		"POV: You found the best Black Friday deals 😱 Limited stock! #Shopping #Sales",
		"This Black Friday deal is INSANE! 🤯 Watch till the end. #BestDeals",
	},
	domain.PlatformLinkedIn: {
		"Empower your team with enterprise-grade solutions. Join Fortune 500 companies.",
		"ROI that speaks for itself. 40% productivity gains in first quarter. Read case studies.",
		"Professional tools for professional results. Trusted by industry leaders worldwide.",
	},
}

var toneCycle = []domain.Tone{domain.TonePersuasive, domain.ToneWitty, domain.ToneCasual, domain.ToneFormal}

var baseImpressions = map[domain.Platform]int{
	domain.PlatformInstagram: 600,
	domain.PlatformFacebook:  700,
	domain.PlatformYouTube:   900,
	domain.PlatformLinkedIn:  350,
	domain.PlatformTikTok:    1200,
}

const defaultBaseImpressions = 500

type demoComment struct {
	Message       string
	CampaignIndex int
}

var demoComments = []demoComment{
	{"Summer Sale crushing it! ML predicts 15% growth next week. Scale budget by 25%.", 0},
	{"Instagram engagement phenomenal. A/B test shows Variation B wins +37.6%.", 0},
	{"Black Friday needs work. CTR below 2%. Running predictive analysis.", 3},
	{"B2B campaign stable. Model accuracy 87%. Consider video content.", 4},
	{"YouTube high performer. Predicted conversions: 450+ next week.", 2},
}

type demoSchedule struct {
	Name       string
	Frequency  domain.ReportFrequency
	Format     domain.ReportFormat
	Recipients []string
}

var demoSchedules = []demoSchedule{
	{"Weekly Performance Report", domain.FrequencyWeekly, domain.FormatEmail, []string{"demo@advision.com", "team@advision.com"}},
	{"Monthly Executive Summary", domain.FrequencyMonthly, domain.FormatPDF, []string{"admin@advision.com"}},
}

const (
	abTestName         = "Headline Test - Summer Sale"
	trainableAgeDays   = 14
	trainableCampaigns = 3
	scheduleCampaigns  = 3
	maxHistoryDays     = 45
	campaignLengthDays = 30
)
