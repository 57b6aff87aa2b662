// @title        Consultant Portal API
// @version      1.0
// @description  Backend for the consultant reseller portal: sign-in by consultant id, registration, session restore and role-gated dashboard navigation.
// @BasePath     /
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
