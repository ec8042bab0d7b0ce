package slug

import "strings"

// Make 从标题生成URL安全的slug
// 字母数字保留并转小写，其余字符折叠为单个连字符
func Make(title string) string {
	var b strings.Builder
	lastDash := true // 抑制开头的连字符

	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}
