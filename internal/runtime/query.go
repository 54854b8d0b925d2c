package runtime

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aretw0/najia/pkg/domain"
	"golang.org/x/text/cases"
)

type keywordRule struct {
	relative domain.SixRelative
	keywords []string
}

// keywordRules are tried in order; the first rule with a hit wins.
// ASCII keywords match whole words, CJK keywords match anywhere.
var keywordRules = []keywordRule{
	{domain.Authority, []string{
		"career", "job", "jobs", "work", "promotion", "official", "office", "boss", "government",
		"lawsuit", "court", "position", "employer", "interview",
		"工作", "事业", "官", "升职", "上司", "官司",
	}},
	{domain.Wealth, []string{
		"money", "wealth", "finance", "finances", "investment", "invest", "profit", "business",
		"salary", "income", "stock", "stocks", "loan", "debt", "deal",
		"财", "钱", "投资", "生意", "收入",
	}},
	{domain.Progenitor, []string{
		"study", "studies", "exam", "exams", "school", "university", "document", "documents",
		"contract", "house", "home", "parent", "parents", "mother", "father", "letter", "degree", "thesis",
		"学", "考", "文书", "合同", "父母", "房",
	}},
	{domain.Offspring, []string{
		"child", "children", "kid", "kids", "son", "daughter", "baby", "pregnancy", "pet", "pets",
		"subordinate", "subordinates", "employee", "employees",
		"孩子", "子女", "儿女", "下属", "宠物",
	}},
	{domain.Sibling, []string{
		"sibling", "siblings", "brother", "brothers", "sister", "sisters", "friend", "friends",
		"peer", "peers", "colleague", "colleagues", "competitor", "rival",
		"兄弟", "姐妹", "朋友", "同事",
	}},
}

var folder = cases.Fold()

// SelectTarget picks the six relative a query is about. A query with no
// category keyword, or no query at all, targets the World line.
func SelectTarget(query string) domain.Target {
	if strings.TrimSpace(query) == "" {
		return domain.WorldLineTarget
	}
	text := folder.String(query)
	words := map[string]bool{}
	for _, w := range strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		words[w] = true
	}

	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if matchKeyword(text, words, kw) {
				return domain.Target{Relative: rule.relative, Keyword: kw}
			}
		}
	}
	return domain.WorldLineTarget
}

func matchKeyword(text string, words map[string]bool, kw string) bool {
	if isASCII(kw) {
		return words[kw]
	}
	return strings.Contains(text, kw)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
