// Command client sends a single protocol request to a coursehub server and
// prints the response, e.g.:
//
//	client -a 127.0.0.1:5000 REGISTER instructor alice pw
//	client GET_COURSES
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/edtechlab/coursehub/internal/client"
)

func main() {

	addr := flag.String("a", "127.0.0.1:5000", "server address")
	timeout := flag.Duration("t", 5*time.Second, "request timeout")
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatal("usage: client [-a addr] [-t timeout] VERB [args...]")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	resp, err := client.Do(ctx, *addr, strings.Join(flag.Args(), " "))
	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

	fmt.Println(resp)
}
