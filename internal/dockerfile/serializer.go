package dockerfile

import "strings"

// Serialize 把文档段落拍平成最终文本
//
// 间距规则是可测试的契约：相邻段落之间恰好一个空行，
// 文档开头没有空行，结尾恰好一个换行符。段落正文内部的
// 空行保持原样。逐段拼装从结构上排除了文本替换方案中
// 常见的空行堆积和残留注释块问题。
func Serialize(doc *RenderedDocument) string {
	bodies := make([]string, 0, len(doc.Sections))
	for _, section := range doc.Sections {
		bodies = append(bodies, section.Body)
	}
	return strings.Join(bodies, "\n\n") + "\n"
}
