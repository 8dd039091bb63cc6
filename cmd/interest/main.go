package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fractionax/marketplace/internal/logger"
	"github.com/fractionax/marketplace/internal/registrar"
)

func main() {
	server := flag.String("server", "http://localhost:8080", "marketplace API base URL")
	email := flag.String("email", "", "email address to notify")
	evmWallet := flag.String("wallet", "", "EVM wallet address to whitelist")
	interestID := flag.Int64("investment", 0, "investment id")
	timeout := flag.Duration("timeout", 10*time.Second, "request timeout")
	flag.Parse()

	form := registrar.Form{Email: *email, EVMWallet: *evmWallet, InterestID: *interestID}
	if errs := form.Validate(); len(errs) > 0 {
		for field, msg := range errs {
			fmt.Fprintf(os.Stderr, "%s: %s\n", field, msg)
		}
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	ack := registrar.NewClient(*server, *timeout).Submit(ctx, form)
	fmt.Println(ack.Message)
	logger.Sync()
	if !ack.OK {
		os.Exit(1)
	}
}
