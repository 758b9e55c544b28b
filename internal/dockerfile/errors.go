package dockerfile

import "fmt"

// InvalidBaseOSError 无法识别的基础镜像系列标识
type InvalidBaseOSError struct {
	Value string // 用户提供的原始值
}

func (e *InvalidBaseOSError) Error() string {
	return fmt.Sprintf("无法识别的基础镜像系列 %q，支持的值: ubuntu, alpine", e.Value)
}

// InvalidVersionError 已启用语言的版本字符串为空
type InvalidVersionError struct {
	Language Language // 出错的语言
	Value    string   // 用户提供的原始值
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("语言 %s 已启用但版本字符串无效 %q", e.Language.DisplayName(), e.Value)
}

// TemplateNotFoundError 指定的头部模板文件不存在或不可读
type TemplateNotFoundError struct {
	Path string // 缺失的模板路径
	Err  error  // 底层 I/O 错误
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("模板文件不可用: %s", e.Path)
}

func (e *TemplateNotFoundError) Unwrap() error {
	return e.Err
}

// OutputWriteError 写出最终文件失败
type OutputWriteError struct {
	Path string // 目标输出路径
	Err  error  // 底层 I/O 错误
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("写入输出文件失败 %s: %v", e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error {
	return e.Err
}
