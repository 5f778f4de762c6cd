package skillgap

import "strings"

type Category string

const (
	CategoryFrontend   Category = "Frontend"
	CategoryBackend    Category = "Backend"
	CategoryMobile     Category = "Mobile"
	CategoryTools      Category = "Tools"
	CategorySoftSkills Category = "Soft Skills"
	CategoryOther      Category = "Other"
)

type categoryKeywords struct {
	category Category
	keywords []string
}

// Declaration order decides which category wins when a name hits keywords of
// several categories ("react native" is Frontend because "react" is tested first).
var categoryTable = []categoryKeywords{
	{CategoryFrontend, []string{"react", "vue", "angular", "html", "css", "javascript", "typescript", "frontend", "ui", "ux", "webpack", "vite", "sass", "less", "styled-components", "tailwind"}},
	{CategoryBackend, []string{"node", "python", "java", "go", "golang", "ruby", "php", "sql", "database", "mongo", "postgres", "api", "server", "aws", "cloud", "docker", "kubernetes", "redis", "graphql"}},
	{CategoryMobile, []string{"ios", "android", "swift", "kotlin", "react native", "flutter", "mobile", "dart"}},
	{CategoryTools, []string{"git", "github", "gitlab", "jenkins", "jira", "agile", "scrum", "testing", "jest", "cypress", "selenium", "ci/cd"}},
	{CategorySoftSkills, []string{"communication", "leadership", "teamwork", "english", "spanish", "management", "mentoring", "problem solving", "time management"}},
}

// DefaultCategories are force-added to a summary that has fewer than
// MinActiveCategories axes.
var DefaultCategories = []Category{CategoryFrontend, CategoryBackend, CategoryTools, CategorySoftSkills}

// Categories lists every category in declaration order, Other last.
func Categories() []Category {
	out := make([]Category, 0, len(categoryTable)+1)
	for _, c := range categoryTable {
		out = append(out, c.category)
	}
	return append(out, CategoryOther)
}

func Categorize(name string) Category {
	n := strings.ToLower(name)
	for _, c := range categoryTable {
		for _, k := range c.keywords {
			if strings.Contains(n, k) {
				return c.category
			}
		}
	}
	return CategoryOther
}
