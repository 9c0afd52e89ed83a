package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"shopconv/internal/converter"
)

const testTemplate = "Title,Handle,Price,Option1 name,Option1 value,Tags\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// collect 读完进度通道并返回 done 事件携带的汇总
func collect(t *testing.T, ch <-chan ProgressEvent) (*Report, []ProgressEvent) {
	t.Helper()
	var events []ProgressEvent
	var report *Report
	for ev := range ch {
		events = append(events, ev)
		if ev.Type == "done" {
			r, ok := ev.Data.(*Report)
			if !ok {
				t.Fatalf("done event data = %T", ev.Data)
			}
			report = r
		}
	}
	return report, events
}

func TestRunner_Batch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tpl := writeFile(t, dir, "template.csv", testTemplate)
	src1 := writeFile(t, dir, "vendor-a.csv",
		"Title,Final Price,0-3M,3-6M\nRomper,999,1,1\n")
	src2 := writeFile(t, dir, "vendor-b.csv",
		"Title,Final Price\nOnesie,450\n")

	report, _ := collect(t, NewRunner().Run(Options{
		Sources:      []string{src1, src2},
		TemplatePath: tpl,
		Convert:      converter.DefaultOptions(),
	}))

	if report == nil {
		t.Fatalf("no done event")
	}
	if report.Total != 2 || report.Converted != 2 || report.Failed != 0 {
		t.Fatalf("report = %+v", report)
	}

	// 未指定输出时落在源文件旁，自动命名
	want := filepath.Join(dir, "vendor-a - Converted - Shopify.csv")
	if report.Files[0].Output != want {
		t.Fatalf("output = %q, want %q", report.Files[0].Output, want)
	}
	if report.Files[0].Rows != 2 || report.Files[1].Rows != 1 {
		t.Fatalf("rows = %d %d", report.Files[0].Rows, report.Files[1].Rows)
	}
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("output file missing: %v", err)
	}
}

func TestRunner_MixedSuccessFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tpl := writeFile(t, dir, "template.csv", testTemplate)
	good := writeFile(t, dir, "good.csv", "Title,Final Price\nRomper,999\n")
	// 缺少标题列，单文件失败但批次继续
	bad := writeFile(t, dir, "bad.csv", "Brand,Final Price\nMoms home,999\n")
	missing := filepath.Join(dir, "missing.csv")

	report, events := collect(t, NewRunner().Run(Options{
		Sources:      []string{bad, missing, good},
		TemplatePath: tpl,
		OutPath:      filepath.Join(dir, "out"),
		Convert:      converter.DefaultOptions(),
	}))

	if report == nil {
		t.Fatalf("no done event")
	}
	if report.Converted != 1 || report.Failed != 2 {
		t.Fatalf("report = %+v", report)
	}
	if report.Files[0].Status != "error" || report.Files[2].Status != "converted" {
		t.Fatalf("statuses = %v", report.Files)
	}

	errEvents := 0
	for _, ev := range events {
		if ev.Type == "file_error" {
			errEvents++
		}
	}
	if errEvents != 2 {
		t.Fatalf("file_error events = %d, want 2", errEvents)
	}
}

func TestRunner_OutputDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tpl := writeFile(t, dir, "template.csv", testTemplate)
	src := writeFile(t, dir, "vendor.csv", "Title,Final Price\nRomper,999\n")
	outDir := filepath.Join(dir, "converted")

	report, _ := collect(t, NewRunner().Run(Options{
		Sources:      []string{src},
		TemplatePath: tpl,
		OutPath:      outDir,
		Convert:      converter.DefaultOptions(),
	}))

	if report == nil || report.Converted != 1 {
		t.Fatalf("report = %+v", report)
	}
	want := filepath.Join(outDir, "vendor - Converted - Shopify.csv")
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("output file missing: %v", err)
	}
}

func TestRunner_SingleOutputFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tpl := writeFile(t, dir, "template.csv", testTemplate)
	src1 := writeFile(t, dir, "a.csv", "Title,Final Price\nRomper,999\n")
	src2 := writeFile(t, dir, "b.csv", "Title,Final Price\nOnesie,450\n")
	out := filepath.Join(dir, "result.csv")

	// 指定单个输出文件时只处理第一个源文件
	report, _ := collect(t, NewRunner().Run(Options{
		Sources:      []string{src1, src2},
		TemplatePath: tpl,
		OutPath:      out,
		Convert:      converter.DefaultOptions(),
	}))

	if report == nil {
		t.Fatalf("no done event")
	}
	if report.Total != 1 || report.Converted != 1 {
		t.Fatalf("report = %+v", report)
	}
	if report.Files[0].Output != out {
		t.Fatalf("output = %q", report.Files[0].Output)
	}
}

func TestRunner_TemplateMissingAborts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := writeFile(t, dir, "vendor.csv", "Title,Final Price\nRomper,999\n")

	report, events := collect(t, NewRunner().Run(Options{
		Sources:      []string{src},
		TemplatePath: filepath.Join(dir, "no-such-template.csv"),
		Convert:      converter.DefaultOptions(),
	}))

	if report != nil {
		t.Fatalf("expected no done event, got %+v", report)
	}
	if len(events) == 0 || events[len(events)-1].Type != "error" {
		t.Fatalf("events = %v", events)
	}
}

func TestRunner_EmptyTemplateAbortsBatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tpl := writeFile(t, dir, "template.csv", "\n")
	src1 := writeFile(t, dir, "a.csv", "Title,Final Price\nRomper,999\n")
	src2 := writeFile(t, dir, "b.csv", "Title,Final Price\nOnesie,450\n")

	report, _ := collect(t, NewRunner().Run(Options{
		Sources:      []string{src1, src2},
		TemplatePath: tpl,
		Convert:      converter.DefaultOptions(),
	}))

	if report == nil {
		t.Fatalf("no done event")
	}
	// 第一个文件暴露模板问题后批次中止，第二个文件不再尝试
	if report.Failed != 1 || len(report.Files) != 1 {
		t.Fatalf("report = %+v", report)
	}
}

func TestRunner_DoneSurvivesSlowConsumer(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tpl := writeFile(t, dir, "template.csv", testTemplate)

	// 事件总数（start + 每文件 2 个 + done）超出通道缓冲
	sources := make([]string, 60)
	for i := range sources {
		sources[i] = writeFile(t, dir, fmt.Sprintf("v%02d.csv", i),
			"Title,Final Price\nRomper,999\n")
	}

	ch := NewRunner().Run(Options{
		Sources:      sources,
		TemplatePath: tpl,
		OutPath:      filepath.Join(dir, "out"),
		Convert:      converter.DefaultOptions(),
	})

	// 消费方迟迟不取事件：进度事件可以丢，done 带着汇总不能丢
	time.Sleep(300 * time.Millisecond)

	report, _ := collect(t, ch)
	if report == nil {
		t.Fatalf("done event lost")
	}
	if report.Converted != len(sources) || report.Failed != 0 {
		t.Fatalf("report = %+v", report)
	}
}

func TestAutoOutputName(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"vendor.csv":        "vendor - Converted - Shopify.csv",
		"/tmp/listing.xlsx": "listing - Converted - Shopify.csv",
		"noext":             "noext - Converted - Shopify.csv",
	}
	for in, want := range cases {
		if got := AutoOutputName(in); got != want {
			t.Fatalf("AutoOutputName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCountDataRows(t *testing.T) {
	t.Parallel()

	// 带引号换行的字段必须按记录数统计
	data := []byte("Title,Tags\nRomper,\"a, b\"\n\"Two\nLine\",c\n")
	if got := CountDataRows(data); got != 2 {
		t.Fatalf("CountDataRows = %d, want 2", got)
	}
	if got := CountDataRows([]byte("Title\n")); got != 0 {
		t.Fatalf("header only = %d, want 0", got)
	}
	if got := CountDataRows(nil); got != 0 {
		t.Fatalf("empty = %d, want 0", got)
	}
}
