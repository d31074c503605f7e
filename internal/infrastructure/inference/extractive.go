package inference

import (
	"context"
	"strings"
	"unicode"
)

// ExtractiveSummarizer 进程内抽取式摘要
// 取开头的完整句子，直到达到词数上限；第一句超长时按词截断
type ExtractiveSummarizer struct {
	MaxWords int
}

// NewExtractiveSummarizer 创建抽取式摘要器
func NewExtractiveSummarizer(maxWords int) *ExtractiveSummarizer {
	if maxWords <= 0 {
		maxWords = 60
	}
	return &ExtractiveSummarizer{MaxWords: maxWords}
}

// Summarize 生成摘要
func (s *ExtractiveSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var (
		out   []string
		words int
	)
	for _, sentence := range splitSentences(text) {
		n := len(strings.Fields(sentence))
		if words+n > s.MaxWords {
			if len(out) == 0 {
				out = append(out, truncateWords(sentence, s.MaxWords))
			}
			break
		}
		out = append(out, sentence)
		words += n
	}

	return strings.Join(out, " "), nil
}

// splitSentences 按.!?及其后的空白切分句子，并压缩句内空白
func splitSentences(text string) []string {
	var (
		sentences []string
		start     int
	)
	runes := []rune(text)
	for i, r := range runes {
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue
		}
		if s := normalizeSpace(string(runes[start : i+1])); s != "" {
			sentences = append(sentences, s)
		}
		start = i + 1
	}
	if s := normalizeSpace(string(runes[start:])); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncateWords(s string, n int) string {
	fields := strings.Fields(s)
	if len(fields) <= n {
		return s
	}
	return strings.Join(fields[:n], " ") + "..."
}
