package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/feather-lang/greetbridge"
)

// memStats holds memory statistics for a point in time
type memStats struct {
	alloc uint64 // Go heap bytes allocated and still in use
	sys   uint64 // bytes obtained from system by the Go runtime
	rss   uint64 // resident set size, includes native allocations (0 if unknown)
	numGC uint32 // number of completed GC cycles
}

func getMemStats() memStats {
	runtime.GC() // Force GC so cleanups for dropped greeters get a chance to run
	runtime.GC()
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return memStats{
		alloc: m.Alloc,
		sys:   m.Sys,
		rss:   residentBytes(),
		numGC: m.NumGC,
	}
}

// residentBytes reads the resident set size on Linux.
func residentBytes() uint64 {
	data, err := os.ReadFile("/proc/self/statm")
	if err != nil {
		return 0
	}
	fields := strings.Fields(string(data))
	if len(fields) < 2 {
		return 0
	}
	pages, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return 0
	}
	return pages * uint64(os.Getpagesize())
}

func (m memStats) String() string {
	return fmt.Sprintf("Alloc: %6d KB, Sys: %6d KB, RSS: %6d KB, NumGC: %d",
		m.alloc/1024, m.sys/1024, m.rss/1024, m.numGC)
}

// cycle constructs, greets and releases greeters through every bridge path.
// Every fourth greeter is dropped without Close to exercise the cleanup path.
func cycle(i int) error {
	subject := fmt.Sprintf("subject %d ✓ 世界", i)

	g, err := greetbridge.New(subject)
	if err != nil {
		return err
	}
	if _, err := g.Greet(); err != nil {
		return err
	}
	if i%4 != 0 {
		g.Close()
	}

	units, err := greetbridge.EncodeUTF16(subject)
	if err != nil {
		return err
	}
	u, err := greetbridge.NewUTF16(units)
	if err != nil {
		return err
	}
	defer u.Close()
	_, err = u.GreetUTF16()
	return err
}

func main() {
	const iterations = 100000
	const reportInterval = 10000

	// Get baseline memory stats
	startMem := getMemStats()
	fmt.Println("Start:", startMem)

	for i := 0; i < iterations; i++ {
		if err := cycle(i); err != nil {
			fmt.Fprintf(os.Stderr, "error at iteration %d: %v\n", i, err)
			os.Exit(1)
		}

		if i%reportInterval == 0 && i > 0 {
			stats := getMemStats()
			fmt.Printf("Iteration %6d: %s\n", i, stats)
		}
	}

	endMem := getMemStats()
	fmt.Println("End:  ", endMem)

	allocGrowth := int64(endMem.alloc) - int64(startMem.alloc)
	rssGrowth := int64(endMem.rss) - int64(startMem.rss)
	bytesPerIteration := float64(allocGrowth) / float64(iterations)
	rssPerIteration := float64(rssGrowth) / float64(iterations)

	fmt.Printf("\nGo heap growth: %d KB (%.2f bytes/iteration)\n", allocGrowth/1024, bytesPerIteration)
	fmt.Printf("RSS growth:     %d KB (%.2f bytes/iteration)\n", rssGrowth/1024, rssPerIteration)

	// Each iteration allocates two native objects of roughly 60 bytes each;
	// a leak shows up as growth of that order per iteration.
	const maxBytesPerIter = 50.0

	if bytesPerIteration > maxBytesPerIter || (endMem.rss != 0 && rssPerIteration > maxBytesPerIter) {
		fmt.Fprintf(os.Stderr, "FAIL: Memory leak detected\n")
		fmt.Fprintf(os.Stderr, "  Start: %s\n", startMem)
		fmt.Fprintf(os.Stderr, "  End:   %s\n", endMem)
		fmt.Fprintf(os.Stderr, "  Threshold: %.2f bytes/iteration\n", maxBytesPerIter)
		os.Exit(1)
	}

	fmt.Println("PASS: No memory leaks detected")
}
