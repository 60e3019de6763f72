// Package i18n provides the localized string tables for report output.
//
// The report language is an explicit value threaded to the reporter, not
// process-wide state, so the scan core stays side-effect free.
package i18n

import "fmt"

// Lang identifies a report language.
type Lang string

// Supported report languages.
const (
	English            Lang = "en"
	SimplifiedChinese  Lang = "chs"
	TraditionalChinese Lang = "cht"
	Japanese           Lang = "ja"
)

// Supported reports whether code names a known language.
func Supported(code string) bool {
	_, ok := tables[Lang(code)]
	return ok
}

// Codes returns the supported language codes, in the order they are
// documented in the CLI help.
func Codes() []string {
	return []string{"en", "chs", "cht", "ja"}
}

// Translator resolves report strings for one language.
type Translator struct {
	table map[string]string
}

// New returns a Translator for the given language. Unknown languages fall
// back to English rather than failing: the numbers in the report are the
// contract, the labels are best-effort.
func New(lang Lang) Translator {
	table, ok := tables[lang]
	if !ok {
		table = tables[English]
	}
	return Translator{table: table}
}

// T returns the translation for key, or the key itself when no entry
// exists so missing strings stay visible instead of vanishing.
func (tr Translator) T(key string) string {
	if s, ok := tr.table[key]; ok {
		return s
	}
	return key
}

// Tf translates key and applies fmt formatting to it.
func (tr Translator) Tf(key string, args ...any) string {
	return fmt.Sprintf(tr.T(key), args...)
}

var tables = map[Lang]map[string]string{
	English: {
		"report.title":         "Code Line Statistics Results",
		"report.files":         "Files",
		"report.file_count":    "File Count",
		"report.total_lines":   "Total Lines",
		"report.code_lines":    "Code Lines",
		"report.comment_lines": "Comment Lines",
		"report.blank_lines":   "Blank Lines",
		"report.code_ratio":    "Code Line Ratio",
		"report.comment_ratio": "Comment Line Ratio",
		"report.blank_ratio":   "Blank Line Ratio",
		"report.total":         "Total",
		"report.extension":     "Extension",
		"report.skipped":       "Skipped Files",
		"report.read_failed":   "Failed to read file",
	},
	SimplifiedChinese: {
		"report.title":         "代码行数统计结果",
		"report.files":         "文件数量",
		"report.file_count":    "文件数量",
		"report.total_lines":   "总行数",
		"report.code_lines":    "代码行",
		"report.comment_lines": "注释行",
		"report.blank_lines":   "空行",
		"report.code_ratio":    "代码行占比",
		"report.comment_ratio": "注释行占比",
		"report.blank_ratio":   "空行占比",
		"report.total":         "总计",
		"report.extension":     "扩展名",
		"report.skipped":       "跳过的文件",
		"report.read_failed":   "读取文件失败",
	},
	TraditionalChinese: {
		"report.title":         "程式碼行數統計結果",
		"report.files":         "檔案數量",
		"report.file_count":    "檔案數量",
		"report.total_lines":   "總行數",
		"report.code_lines":    "程式碼行",
		"report.comment_lines": "註解行",
		"report.blank_lines":   "空白行",
		"report.code_ratio":    "程式碼行佔比",
		"report.comment_ratio": "註解行佔比",
		"report.blank_ratio":   "空白行佔比",
		"report.total":         "總計",
		"report.extension":     "副檔名",
		"report.skipped":       "跳過的檔案",
		"report.read_failed":   "讀取檔案失敗",
	},
	Japanese: {
		"report.title":         "コード行数統計結果",
		"report.files":         "ファイル数",
		"report.file_count":    "ファイル数",
		"report.total_lines":   "総行数",
		"report.code_lines":    "コード行",
		"report.comment_lines": "コメント行",
		"report.blank_lines":   "空白行",
		"report.code_ratio":    "コード行の割合",
		"report.comment_ratio": "コメント行の割合",
		"report.blank_ratio":   "空白行の割合",
		"report.total":         "合計",
		"report.extension":     "拡張子",
		"report.skipped":       "スキップしたファイル",
		"report.read_failed":   "ファイルの読み取りに失敗しました",
	},
}
