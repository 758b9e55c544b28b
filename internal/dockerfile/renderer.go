package dockerfile

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/sirupsen/logrus"
)

// Renderer 把验证过的 BuildOptions 确定性地渲染成 RenderedDocument
//
// 渲染是纯内存计算，无副作用，同样的输入渲染任意多次
// 都得到逐字节一致的结果。镜像系列在选项验证时已解析为枚举，
// 渲染阶段只按枚举选取段落变体，不再做任何字符串判断。
type Renderer struct {
	logger *logrus.Logger
}

// NewRenderer 创建新的渲染器
func NewRenderer(logger *logrus.Logger) *Renderer {
	return &Renderer{logger: logger}
}

// Render 按固定顺序构造文档段落
//
// 顺序：头部（可选）→ 基础镜像与通用工具 → 工作目录 →
// 语言段（固定顺序 Go, Rust, Python, Node.js, Java）→ 默认命令。
// 未启用语言的段落完全不进入文档，不存在"注释掉"的内容；
// FROM 与 CMD 在结构上各只出现一次。
//
// 对验证过的选项，每条路径都有确定输出；返回的 error 仅在
// 内置模板自身损坏时出现，属于程序缺陷而非运行时条件。
func (r *Renderer) Render(opts *BuildOptions) (*RenderedDocument, error) {
	data := sectionData{
		Image:   opts.BaseOS.Image(),
		Shell:   opts.BaseOS.Shell(),
		Workdir: opts.Workdir,
	}

	doc := &RenderedDocument{}

	// 可选头部段：外部模板内容原样置于文档最前
	if opts.Header != "" {
		doc.Sections = append(doc.Sections, Section{
			Name: "header",
			Body: strings.TrimRight(opts.Header, "\n"),
		})
	}

	base, err := executeSection(baseSectionTmpl[opts.BaseOS], data)
	if err != nil {
		return nil, err
	}
	doc.Sections = append(doc.Sections, Section{Name: "base", Body: base})

	workdir, err := executeSection(workdirSectionTmpl, data)
	if err != nil {
		return nil, err
	}
	doc.Sections = append(doc.Sections, Section{Name: "workdir", Body: workdir})

	// 语言段按 AllLanguages 的固定顺序生成，保证输出可 diff
	for _, lang := range AllLanguages {
		if !opts.Enabled(lang) {
			continue
		}

		langData := data
		langData.Version = opts.Versions[lang]

		body, err := executeSection(languageSectionTmpl[lang][opts.BaseOS], langData)
		if err != nil {
			return nil, err
		}
		doc.Sections = append(doc.Sections, Section{Name: string(lang), Body: body})
		r.logger.Debugf("已生成语言段: %s (版本 %q)", lang, langData.Version)
	}

	cmd, err := executeSection(cmdSectionTmpl, data)
	if err != nil {
		return nil, err
	}
	doc.Sections = append(doc.Sections, Section{Name: "cmd", Body: cmd})

	r.logger.Debugf("文档渲染完成，共 %d 个段落", len(doc.Sections))
	return doc, nil
}

// executeSection 渲染单个段落模板
func executeSection(tmpl *template.Template, data sectionData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("段落模板 %s 执行失败: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}
