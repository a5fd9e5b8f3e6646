package views

// Статический контент главной страницы.

// Benefit — карточка блока преимуществ стипендии.
type Benefit struct {
	Icon  string
	Title string
	Text  string
}

// Scholarship — блок стипендиальной программы.
type Scholarship struct {
	Title    string
	Lead     string
	Steps    []string
	ApplyURL string
	Deadline string
}

// Interview — блок интервью со стипендиатом.
type Interview struct {
	Name    string
	Role    string
	Quote   string
	Photo   string
	VideoID string
}

// FooterLink — ссылка подвала.
type FooterLink struct {
	Label string
	Href  string
}

var defaultScholarship = Scholarship{
	Title: "Scholarship program",
	Lead:  "The foundation funds tuition and mentoring for motivated students from partner schools.",
	Steps: []string{
		"Fill in the application form",
		"Pass the online test",
		"Interview with the selection committee",
		"Receive the scholarship and a mentor",
	},
	ApplyURL: "/apply",
	Deadline: "Applications are accepted until 1 June",
}

var defaultBenefits = []Benefit{
	{Icon: "graduation-cap", Title: "Tuition", Text: "Full or partial coverage of university tuition."},
	{Icon: "users", Title: "Mentoring", Text: "A personal mentor from the foundation's alumni community."},
	{Icon: "book-open", Title: "Courses", Text: "Free access to language and professional courses."},
	{Icon: "handshake", Title: "Internships", Text: "Internships with the foundation's partner companies."},
}

var defaultInterview = Interview{
	Name:    "Aigerim S.",
	Role:    "Scholarship holder, class of 2023",
	Quote:   "The scholarship let me focus on studying instead of part-time jobs, and my mentor helped me land my first internship.",
	Photo:   "/static/interview.jpg",
	VideoID: "",
}

var defaultFooterLinks = []FooterLink{
	{Label: "About", Href: "/#about"},
	{Label: "Scholarship", Href: "/#scholarship"},
	{Label: "News", Href: "/#news"},
	{Label: "Partners", Href: "/#partners"},
	{Label: "Portal", Href: "/login"},
}
