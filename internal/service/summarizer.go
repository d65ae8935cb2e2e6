package service

import (
	"context"
	"strings"
)

// Summarizer 笔记增强端口，由外部生成式模型客户端实现
// 为 nil 或调用失败时降级为本地截断摘要
type Summarizer interface {
	Summarize(ctx context.Context, content string) (string, error)
	ExtractKeyPoints(ctx context.Context, content string) (string, error)
}

// localSummaryRuneLimit 本地降级摘要保留的最大字符数
const localSummaryRuneLimit = 150

// LocalSummary 本地降级摘要：截取正文前 150 个字符并追加省略号
func LocalSummary(content string) string {
	content = strings.TrimSpace(content)
	runes := []rune(content)
	if len(runes) > localSummaryRuneLimit {
		runes = runes[:localSummaryRuneLimit]
	}
	return string(runes) + "..."
}
