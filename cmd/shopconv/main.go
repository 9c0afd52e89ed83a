package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"shopconv/internal/batch"
	"shopconv/internal/config"
	"shopconv/internal/converter"
	"shopconv/internal/server"
	"shopconv/internal/util"
)

var (
	serve      = flag.Bool("serve", false, "启动 Web 服务模式")
	port       = flag.Int("port", 0, "服务端口 (config.toml 优先；仅当未显式配置 port 时生效)")
	devMode    = flag.Bool("dev", false, "开发模式")
	dataDir    = flag.String("dataDir", "", "数据目录 (覆盖配置文件)")
	template   = flag.String("template", "", "模板 CSV 路径（批量转换模式必填）")
	out        = flag.String("out", "", "输出文件或目录；为空时输出到源文件旁")
	noFallback = flag.Bool("no-fallback-cost", false, "Final Price 缺失时不回退到 Cost")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  ShopConv - 商品列表转换工具")
	fmt.Println("==========================================")

	// 加载配置
	cfg, info, err := config.LoadConfigWithInfo()
	if err != nil {
		log.Printf("加载配置失败，使用默认配置: %v", err)
		cfg = config.DefaultConfig()
		info = config.LoadConfigInfo{}
	}

	// 命令行参数覆盖配置
	if *port > 0 && !info.PortSpecified {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}
	if *noFallback {
		cfg.Convert.FallbackPriceToCost = false
	}

	if *serve {
		runServer(cfg)
		return
	}

	runBatch(cfg)
}

// runBatch 批量转换模式：位置参数为源文件列表
func runBatch(cfg *config.AppConfig) {
	sources := flag.Args()
	if len(sources) == 0 || *template == "" {
		fmt.Println("\n用法:")
		fmt.Println("  批量转换: shopconv -template 模板.csv [-out 路径] [-no-fallback-cost] 源文件...")
		fmt.Println("  Web 模式: shopconv -serve [-port 端口] [-dataDir 目录]")
		os.Exit(2)
	}

	runner := batch.NewRunner()
	events := runner.Run(batch.Options{
		Sources:      sources,
		TemplatePath: *template,
		OutPath:      *out,
		Convert: converter.Options{
			FallbackPriceToCost: cfg.Convert.FallbackPriceToCost,
		},
	})

	var report *batch.Report
	for event := range events {
		fmt.Println(event.Message)
		if event.Type == "done" {
			if r, ok := event.Data.(*batch.Report); ok {
				report = r
			}
		}
	}

	if report == nil || report.Converted == 0 {
		os.Exit(1)
	}
}

// runServer Web 服务模式
func runServer(cfg *config.AppConfig) {
	srv := server.NewServer(cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	go func() {
		fmt.Printf("服务启动中，监听端口 %d ...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 打开浏览器
	if !cfg.Server.DevMode {
		fmt.Printf("正在打开浏览器: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("无法自动打开浏览器，请手动访问: %s\n", url)
		}
	} else {
		fmt.Printf("开发模式: 请访问 %s\n", url)
	}

	fmt.Println("\n按 Ctrl+C 停止服务...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\n正在关闭服务...")
	if err := srv.Close(); err != nil {
		log.Printf("关闭资源失败: %v", err)
	}
}
