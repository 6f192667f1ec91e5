// cmd/facectl/main.go
package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tamzrod/person-sensor/internal/bus"
	"github.com/tamzrod/person-sensor/internal/protocol"
	"github.com/tamzrod/person-sensor/internal/sensor"
)

// Version is the tool version.
const Version = "0.1.0"

type readOptions struct {
	Bus      string
	Device   string
	Addr     int
	Endpoint string
	UnitID   uint8
	Register uint16
	BaudRate int
	Timeout  time.Duration
	Count    int
	ReadGap  time.Duration
	Raw      bool
}

var readOpts readOptions

var rootCmd = &cobra.Command{
	Use:     "facectl",
	Short:   "Person Sensor debug tool",
	Version: Version,
}

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Read frames from a sensor and print the detected faces",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRead(cmd.Context(), readOpts)
	},
}

func init() {
	f := readCmd.Flags()
	f.StringVarP(&readOpts.Bus, "bus", "b", "i2c", "Bus transport: i2c, modbus-tcp or modbus-rtu")
	f.StringVarP(&readOpts.Device, "device", "d", "/dev/i2c-1", "I2C node or serial device")
	f.IntVarP(&readOpts.Addr, "addr", "a", protocol.DefaultAddr, "I2C device address")
	f.StringVar(&readOpts.Endpoint, "endpoint", "", "Modbus TCP endpoint (host:port)")
	f.Uint8Var(&readOpts.UnitID, "unit-id", 1, "Modbus unit id")
	f.Uint16Var(&readOpts.Register, "register", 0, "First input register of the frame window")
	f.IntVar(&readOpts.BaudRate, "baud", 0, "Serial baud rate (modbus-rtu)")
	f.DurationVar(&readOpts.Timeout, "timeout", 3*time.Second, "Bus transaction timeout")
	f.IntVarP(&readOpts.Count, "count", "n", 1, "Frames to read (0 = until interrupted)")
	f.DurationVar(&readOpts.ReadGap, "read-gap", protocol.RecommendedReadGap, "Minimum spacing between bus reads (0 disables)")
	f.BoolVar(&readOpts.Raw, "raw", false, "Hex-dump each raw frame as well")

	rootCmd.AddCommand(readCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "facectl:", err)
		os.Exit(1)
	}
}

func runRead(ctx context.Context, opts readOptions) error {
	conn, err := openConn(opts)
	if err != nil {
		return err
	}
	defer conn.Close()

	s := sensor.New(conn, sensor.WithReadGap(opts.ReadGap))

	for n := 0; opts.Count == 0 || n < opts.Count; n++ {
		frame, err := s.ReadFrame(ctx)
		if err != nil {
			return err
		}

		if opts.Raw {
			hdr, _ := protocol.ParseHeader(frame)
			fmt.Printf("frame %d: payload_len=%d declared_faces=%d\n%s",
				n, hdr.PayloadLen, hdr.FaceCount, hex.Dump(frame))
		}

		faces, err := protocol.Decode(frame)
		if err != nil {
			return err
		}
		printFaces(n, faces)
	}
	return nil
}

func openConn(opts readOptions) (bus.Conn, error) {
	switch opts.Bus {
	case "i2c":
		return bus.OpenI2C(bus.I2CConfig{
			Device: opts.Device,
			Addr:   opts.Addr,
		})

	case "modbus-tcp":
		return bus.OpenModbus(bus.ModbusConfig{
			Endpoint: opts.Endpoint,
			UnitID:   opts.UnitID,
			Register: opts.Register,
			Timeout:  opts.Timeout,
		})

	case "modbus-rtu":
		return bus.OpenModbus(bus.ModbusConfig{
			Endpoint: opts.Device,
			RTU:      true,
			BaudRate: opts.BaudRate,
			UnitID:   opts.UnitID,
			Register: opts.Register,
			Timeout:  opts.Timeout,
		})

	default:
		return nil, fmt.Errorf("unknown bus %q", opts.Bus)
	}
}

func printFaces(n int, faces []protocol.Face) {
	fmt.Printf("frame %d: %d face(s)\n", n, len(faces))
	for i, f := range faces {
		id := "-"
		if f.Recognized() {
			id = fmt.Sprintf("%d (conf %d)", f.ID, f.IDConfidence)
		}
		facing := "away"
		if f.IsFacing {
			facing = "facing"
		}
		fmt.Printf("  #%d box=(%d,%d)-(%d,%d) conf=%d %s id=%s\n",
			i, f.Box.Left, f.Box.Top, f.Box.Right, f.Box.Bottom,
			f.BoxConfidence, facing, id)
	}
}
