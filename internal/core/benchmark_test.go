package core

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

// ============================================================================
// Tokenizer Benchmarks
// ============================================================================

// BenchmarkSplitLine benchmarks tokenizing a typical polling place row.
// This is the hot path: every raw line passes through it once.
func BenchmarkSplitLine(b *testing.B) {
	line := `NSW,101,Banks,3021,"Beverly Hills North, Public School",28761,SMITH,Jo,1,Y,N,ALP,"Australian Labor Party",1523,2.35`

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SplitLine(line)
	}
}

// BenchmarkSplitLine_Unquoted benchmarks the common case with no quotes.
func BenchmarkSplitLine_Unquoted(b *testing.B) {
	line := "NSW,ALP,Australian Labor Party,1523,44,12,803,611,2993,33.01,-1.5"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SplitLine(line)
	}
}

// ============================================================================
// Header Benchmarks
// ============================================================================

// BenchmarkResolveHeader benchmarks header selection on a titled file.
func BenchmarkResolveHeader(b *testing.B) {
	lines := SplitLines(string(generateContestFile(100)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ResolveHeader(lines)
	}
}

// BenchmarkMakeHeaderIndex_Large benchmarks index creation for wide headers.
func BenchmarkMakeHeaderIndex_Large(b *testing.B) {
	columns := make([]string, 50)
	for i := range columns {
		columns[i] = fmt.Sprintf("Column%d", i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		MakeHeaderIndex(columns)
	}
}

// ============================================================================
// Pipeline Benchmarks
// ============================================================================

// BenchmarkProcess benchmarks a full decode at several worker counts.
// A polling place file has roughly 15,000 rows.
func BenchmarkProcess(b *testing.B) {
	data := generateContestFile(15000)

	for _, workers := range []int{1, 4, 0} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, _, err := Process(context.Background(), contestKind, data, Options{Workers: workers}); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkDecodeText_LargeFile benchmarks BOM stripping and UTF-8
// validation on a large file.
func BenchmarkDecodeText_LargeFile(b *testing.B) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, generateContestFile(15000)...)

	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := decodeText(data); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkMapError benchmarks error pattern matching, which runs once per
// dropped group.
func BenchmarkMapError(b *testing.B) {
	err := &DecodeError{Kind: "Contest", Group: 3, Line: 9, Err: &GroupShapeError{Want: 2, Got: 1}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		MapError(err)
	}
}

// ============================================================================
// Helper Functions
// ============================================================================

// generateContestFile builds a titled file of contest rows for contestKind.
func generateContestFile(rows int) []byte {
	var sb strings.Builder
	sb.WriteString("Results Summary\nSeat,Party,Votes,Notes\n")
	for i := 0; i < rows; i++ {
		fmt.Fprintf(&sb, "Seat%d,\"Party, %d\",%d,\n", i/2, i%2, 1000+i)
	}
	return []byte(sb.String())
}
