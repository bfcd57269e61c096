package landing

// Copy for the two pages. The home page speaks to Korean café owners, the
// demo page to the wider showcase audience.

type Step struct {
	Number      string
	Title       string
	Description string
}

type Stat struct {
	Value string
	Label string
}

type Benefit struct {
	Icon        string
	Title       string
	Description string
	Stat        string
	StatLabel   string
}

type Trend struct {
	Stat        string
	Title       string
	Description string
}

type Hero struct {
	Eyebrow  string
	Title    string
	Accent   string
	Subtitle string
	Primary  string
	Demo     string
}

type Section struct {
	Eyebrow  string
	Title    string
	Accent   string
	Subtitle string
}

type CTA struct {
	Title    string
	Subtitle string
	Primary  string
	Demo     string
}

type HomeContent struct {
	Brand       string
	Hero        Hero
	HowItWorks  Section
	Steps       []Step
	DemoVideo   Section
	DemoStats   []Stat
	Benefits    Section
	BenefitList []Benefit
	Instagram   Section
	Trends      []Trend
	ReelHandle  string
	ReelCaption string
	CTA         CTA
	Footer      Footer
}

type DemoContent struct {
	Brand    string
	Back     string
	Badge    string
	Title    string
	Accent   string
	Subtitle string
	Stats    []Stat
	More     Section
	CTA      CTA
	Footer   Footer
}

type Footer struct {
	Tagline   string
	Copyright string
	Links     []Link
}

type Link struct {
	Label string
	Href  string
}

var homeContent = HomeContent{
	Brand: "StoryBite",
	Hero: Hero{
		Eyebrow:  "AI 스토리텔링 영상",
		Title:    "당신의 가게에는",
		Accent:   "이야기가 있습니다",
		Subtitle: "카페와 레스토랑의 진짜 이야기를 생성형 AI로 감동적인 영상으로 만들어 드립니다.",
		Primary:  "스토리 시작하기",
		Demo:     "예시 보기",
	},
	HowItWorks: Section{Eyebrow: "How it works", Title: "세 단계로 완성되는", Accent: "당신의 스토리"},
	Steps: []Step{
		{Number: "01", Title: "이야기를 들려주세요", Description: "카페나 레스토랑의 열정, 역사, 특별한 여정을 공유해 주세요. 모든 디테일을 경청합니다."},
		{Number: "02", Title: "AI 마법이 시작됩니다", Description: "생성형 AI가 당신의 이야기를 감동적인 영상으로 변환하여 스토리에 생명을 불어넣습니다."},
		{Number: "03", Title: "고객을 사로잡고 성장하세요", Description: "온라인 플랫폼에서 영상을 공유하세요. 고객들이 당신의 이야기에 공감하고 도달 범위가 확장됩니다."},
	},
	DemoVideo: Section{Eyebrow: "Demo", Title: "샌디레이크의", Accent: "이야기", Subtitle: "포항 유일의 정통 터키식 커피, 그 이야기를 만나보세요."},
	DemoStats: []Stat{
		{Value: "10분", Label: "제작 시간"},
		{Value: "AI 자동화", Label: "제작 방식"},
		{Value: "영상 콘텐츠", Label: "결과물 유형"},
	},
	Benefits: Section{
		Eyebrow:  "Why stories",
		Title:    "왜 지금",
		Accent:   "스토리텔링인가",
		Subtitle: "끝없는 스크롤 세상에서 진정성 있는 스토리가 돋보입니다. 생성형 AI 스토리텔링이 경쟁 우위가 되는 이유입니다.",
	},
	BenefitList: []Benefit{
		{Icon: "↗", Title: "온라인 노출 극대화", Description: "영상 콘텐츠는 텍스트와 이미지보다 1200% 더 많이 공유됩니다. 피드에서 눈에 띄고 관심을 사로잡으세요.", Stat: "1200%", StatLabel: "더 많은 공유"},
		{Icon: "♥", Title: "감정적 유대감 형성", Description: "스토리는 유대감을 만듭니다. 고객이 매장에 방문하기 전에 비즈니스의 진심을 느끼게 하세요.", Stat: "73%", StatLabel: "고객 충성도"},
		{Icon: "⚡", Title: "시간과 비용 절약", Description: "비싼 영상 제작을 건너뛰세요. AI가 전문적인 퀄리티의 콘텐츠를 훨씬 빠르고 저렴하게 만들어 드립니다.", Stat: "10배", StatLabel: "빠른 제작"},
		{Icon: "▶", Title: "플랫폼 맞춤 콘텐츠", Description: "인스타그램, 틱톡, 유튜브, 웹사이트에 최적화된 영상을 받으세요. 하나의 스토리, 무한한 가능성.", Stat: "5+", StatLabel: "플랫폼"},
	},
	Instagram: Section{
		Eyebrow:  "Instagram",
		Title:    "고객은 먼저",
		Accent:   "인스타그램을 봅니다",
		Subtitle: "MZ세대의 67%가 새로운 카페나 레스토랑을 방문하기 전에 인스타그램을 먼저 검색합니다. 매력적인 콘텐츠가 없다면, 당신은 보이지 않습니다.",
	},
	Trends: []Trend{
		{Stat: "67%", Title: "인스타그램 먼저 검색", Description: "새로운 맛집을 찾을 때, 고객들은 방문할 가치가 있는지 인스타그램을 먼저 확인합니다."},
		{Stat: "4.2배", Title: "릴스로 더 많은 발견", Description: "인스타그램 릴스의 영상 콘텐츠는 일반 게시물보다 4.2배 더 많은 비팔로워에게 도달합니다."},
		{Stat: "83%", Title: "비주얼 스토리 신뢰", Description: "고객들은 진정성 있는 비주얼 스토리를 공유하는 비즈니스를 더 신뢰하고 방문합니다."},
	},
	ReelHandle:  "sandylake_coffee",
	ReelCaption: "우리의 이야기를 만나보세요. 작은 가족 주방에서 당신의 단골 맛집이 되기까지 ✨",
	CTA: CTA{
		Title:    "당신의 이야기를 시작할 준비가 되셨나요?",
		Subtitle: "이미 수백 개의 카페와 레스토랑이 AI 생성 스토리 영상으로 고객을 사로잡고 있습니다.",
		Primary:  "스토리 시작하기",
		Demo:     "예시 보기",
	},
	Footer: Footer{
		Tagline:   "모든 가게에는 들려줄 이야기가 있습니다.",
		Copyright: "© 2026 StoryBite. All rights reserved.",
		Links: []Link{
			{Label: "How it works", Href: "#how-it-works"},
			{Label: "Demo", Href: "/demo"},
			{Label: "Benefits", Href: "#benefits"},
		},
	},
}

var demoContent = DemoContent{
	Brand:    "StoryBite",
	Back:     "Back to Home",
	Badge:    "Demo Showcase",
	Title:    "See the",
	Accent:   "Magic",
	Subtitle: "Watch how we transformed The Rustic Bean's 30-year journey into a captivating visual story that's been viewed over 2 million times.",
	Stats: []Stat{
		{Value: "2.1M+", Label: "Views"},
		{Value: "12.4%", Label: "Engagement Rate"},
		{Value: "340+", Label: "New Customers"},
	},
	More: Section{Title: "More Success Stories", Subtitle: "Browse examples from different industries and styles"},
	CTA: CTA{
		Title:    "Ready to Create Your Story?",
		Subtitle: "Join hundreds of businesses already captivating their audience with AI-generated videos.",
		Primary:  "Start Creating",
	},
	Footer: Footer{Copyright: "© 2026 StoryBite. All rights reserved."},
}
