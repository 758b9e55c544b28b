package dockerfile

import (
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// sectionData 段落模板渲染时的上下文数据
//
// 版本替换只通过模板字段完成，占位符是明确的 {{ .Version }}，
// 不对已生成文本做任何字符串搜索替换。
type sectionData struct {
	Image   string // 基础镜像引用
	Shell   string // 默认 shell 路径
	Workdir string // 容器内工作目录
	Version string // 当前语言的版本字符串
}

// createFuncMap 创建段落模板的函数映射表
func createFuncMap() template.FuncMap {
	return sprig.TxtFuncMap() // 加载 Sprig 标准函数库
}

// mustParse 解析内置段落模板，模板是编译期常量，解析失败属于程序缺陷
func mustParse(name, body string) *template.Template {
	return template.Must(template.New(name).Funcs(createFuncMap()).Parse(body))
}

// ============================================================================
// 基础段落模板
// ============================================================================

// 基础镜像 + 系统环境 + 通用工具链，两个系列各一份，
// 安装的工具集合在功能上保持等价（编译工具、git、证书、下载工具）
var baseSectionTmpl = map[BaseOS]*template.Template{
	BaseUbuntu: mustParse("base-ubuntu", `# Base image
FROM {{ .Image }}

ENV DEBIAN_FRONTEND=noninteractive

# Common build tools
RUN apt-get update && apt-get install -y \
    build-essential \
    git \
    curl \
    wget \
    ca-certificates \
    gnupg \
    && rm -rf /var/lib/apt/lists/*`),

	BaseAlpine: mustParse("base-alpine", `# Base image
FROM {{ .Image }}

# Common build tools
RUN apk update && apk add --no-cache \
    build-base \
    git \
    curl \
    wget \
    ca-certificates`),
}

var workdirSectionTmpl = mustParse("workdir", `WORKDIR {{ .Workdir }}`)

var cmdSectionTmpl = mustParse("cmd", `CMD ["{{ .Shell }}"]`)

// ============================================================================
// 语言段落模板
// ============================================================================
//
// 每种语言恰好两个互斥的正文变体，按镜像系列选择：
// Ubuntu 系列用 apt-get / 上游安装脚本，Alpine 系列直接走 apk。
// 工具链可用所需的环境变量导出紧跟在安装步骤之后。

var languageSectionTmpl = map[Language]map[BaseOS]*template.Template{
	LangGo: {
		BaseUbuntu: mustParse("golang-ubuntu", `# Go toolchain
RUN curl -fsSL https://go.dev/dl/go{{ trim .Version }}.linux-amd64.tar.gz -o /tmp/go.tar.gz \
    && tar -C /usr/local -xzf /tmp/go.tar.gz \
    && rm /tmp/go.tar.gz

ENV GOPATH=/root/go
ENV PATH="/usr/local/go/bin:${GOPATH}/bin:${PATH}"`),

		BaseAlpine: mustParse("golang-alpine", `# Go toolchain
RUN apk add --no-cache go=~{{ trim .Version }}

ENV GOPATH=/root/go
ENV PATH="${GOPATH}/bin:${PATH}"`),
	},

	LangRust: {
		BaseUbuntu: mustParse("rust-ubuntu", `# Rust toolchain
RUN curl --proto '=https' --tlsv1.2 -sSf https://sh.rustup.rs | sh -s -- -y

ENV PATH="/root/.cargo/bin:${PATH}"`),

		BaseAlpine: mustParse("rust-alpine", `# Rust toolchain
RUN apk add --no-cache rust cargo

ENV CARGO_HOME=/root/.cargo
ENV PATH="${CARGO_HOME}/bin:${PATH}"`),
	},

	LangPython: {
		BaseUbuntu: mustParse("python-ubuntu", `# Python toolchain
RUN apt-get update && apt-get install -y \
    python3 \
    python3-pip \
    python3-venv \
    && rm -rf /var/lib/apt/lists/*

ENV PYTHONUNBUFFERED=1`),

		BaseAlpine: mustParse("python-alpine", `# Python toolchain
RUN apk add --no-cache python3 py3-pip

ENV PYTHONUNBUFFERED=1`),
	},

	LangNodeJS: {
		BaseUbuntu: mustParse("nodejs-ubuntu", `# Node.js toolchain (NodeSource repository)
RUN mkdir -p /etc/apt/keyrings \
    && curl -fsSL https://deb.nodesource.com/gpgkey/nodesource-repo.gpg.key | gpg --dearmor -o /etc/apt/keyrings/nodesource.gpg \
    && echo "deb [signed-by=/etc/apt/keyrings/nodesource.gpg] https://deb.nodesource.com/node_{{ trim .Version }}.x nodistro main" > /etc/apt/sources.list.d/nodesource.list \
    && apt-get update && apt-get install -y nodejs \
    && rm -rf /var/lib/apt/lists/*

ENV NPM_CONFIG_PREFIX=/root/.npm-global
ENV PATH="${NPM_CONFIG_PREFIX}/bin:${PATH}"`),

		BaseAlpine: mustParse("nodejs-alpine", `# Node.js toolchain
RUN apk add --no-cache nodejs=~{{ trim .Version }} npm

ENV NPM_CONFIG_PREFIX=/root/.npm-global
ENV PATH="${NPM_CONFIG_PREFIX}/bin:${PATH}"`),
	},

	LangJava: {
		BaseUbuntu: mustParse("java-ubuntu", `# Java toolchain
RUN apt-get update && apt-get install -y openjdk-{{ trim .Version }}-jdk \
    && rm -rf /var/lib/apt/lists/*

ENV JAVA_HOME=/usr/lib/jvm/java-{{ trim .Version }}-openjdk-amd64
ENV PATH="${JAVA_HOME}/bin:${PATH}"`),

		BaseAlpine: mustParse("java-alpine", `# Java toolchain
RUN apk add --no-cache openjdk{{ trim .Version }}

ENV JAVA_HOME=/usr/lib/jvm/java-{{ trim .Version }}-openjdk
ENV PATH="${JAVA_HOME}/bin:${PATH}"`),
	},
}
