package services

import "strings"

// blockedKeywords gate public inquiry submissions. Matching is a plain
// case-insensitive substring scan.
var blockedKeywords = []string{
	"shibal", "ssibal", "fuck", "shit", "bitch", "idiot",
	"섹스", "도박", "카지노", "바카라", "대출", "성인",
	"시발", "씨발", "개새끼", "병신", "지랄", "좆", "창녀",
}

func containsProfanity(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range blockedKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
