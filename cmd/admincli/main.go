package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fooddel/backend/internal/admin/apiclient"
	"fooddel/backend/internal/admin/orderview"
	"fooddel/backend/internal/admin/statuscache"
)

var (
	serverAddr = flag.String("server", "http://127.0.0.1:4000", "订单服务地址")
	cachePath  = flag.String("cache", defaultCachePath(), "本地状态缓存文件路径")
	setOrderID = flag.String("set", "", "变更配送状态的订单ID")
	setStatus  = flag.String("status", "", "目标配送状态")
	verifyID   = flag.String("verify", "", "支付核验的订单ID")
	verifyOK   = flag.Bool("success", true, "支付核验结果")
)

// defaultCachePath 每个客户端安装各自独立的缓存文件
func defaultCachePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".fooddel/admin_status.json"
	}
	return filepath.Join(home, ".fooddel", "admin_status.json")
}

// toastNotifier 一次性通知输出到终端
type toastNotifier struct{}

func (toastNotifier) Success(message string) { fmt.Printf("✅ %s\n", message) }
func (toastNotifier) Error(message string)   { fmt.Printf("❌ %s\n", message) }

func main() {
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := apiclient.NewClient(*serverAddr)

	cache, err := statuscache.NewFileStore(*cachePath)
	if err != nil {
		fmt.Printf("❌ Failed to open status cache: %v\n", err)
		os.Exit(1)
	}

	view := orderview.NewView(client, cache, toastNotifier{})

	switch {
	case *verifyID != "":
		if err := client.VerifyOrder(ctx, *verifyID, *verifyOK); err != nil {
			fmt.Printf("❌ Verify failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✅ Order verification successful.")

	case *setOrderID != "":
		if *setStatus == "" {
			fmt.Println("❌ -status is required with -set")
			os.Exit(1)
		}
		if err := view.ChangeStatus(ctx, *setOrderID, *setStatus); err != nil {
			os.Exit(1)
		}

	default:
		if err := view.Refresh(ctx); err != nil {
			os.Exit(1)
		}
		printGroups(view.GroupByDate())
	}
}

// printGroups 按日分组输出订单列表（最近日期在前）
func printGroups(groups []*orderview.DateGroup) {
	if len(groups) == 0 {
		fmt.Println("No orders found.")
		return
	}

	for _, group := range groups {
		fmt.Printf("\n%s\n", group.Date)
		fmt.Println("----------------------------------------")
		for _, o := range group.Orders {
			fmt.Printf("  %s  [%s]  %s %s  amount=%.2f  ordered at %s\n",
				o.Order.ID,
				o.Displayed,
				o.Order.Address.FirstName,
				o.Order.Address.LastName,
				o.Order.Amount,
				o.TimeOfDay,
			)
			for _, item := range o.Order.Items {
				fmt.Printf("      %dx %s\n", item.Quantity, item.Name)
			}
		}
	}
}
