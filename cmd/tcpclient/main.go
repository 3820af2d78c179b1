package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/indigo-web/tinyhttp/client"
	"github.com/rs/zerolog"
)

func main() {
	addr := flag.String("addr", "localhost:3000", "server address")
	msg := flag.String("msg", "Hello TCPServer", "message to send")
	n := flag.Int("n", 5, "number of bytes to read back, non-positive to read until the server closes")
	timeout := flag.Duration("timeout", 10*time.Second, "exchange timeout")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().
		Timestamp().
		Logger()

	conn, err := net.DialTimeout("tcp", *addr, *timeout)
	if err != nil {
		log.Fatal().Err(err).Str("addr", *addr).Msg("connect")
	}

	defer func() {
		_ = conn.Close()
	}()

	if err = conn.SetDeadline(time.Now().Add(*timeout)); err != nil {
		log.Error().Err(err).Msg("set deadline")
		return
	}

	reply, err := client.Exchange(conn, []byte(*msg), *n)
	if err != nil {
		log.Error().Err(err).Msg("exchange")
		return
	}

	fmt.Printf("Response from server: %q\n", reply)
}
