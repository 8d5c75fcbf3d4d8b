package election

import (
	"context"
	"fmt"

	"github.com/JonMunkholm/elc/internal/logging"
)

// Party is a party affiliation code as abbreviated in AEC result files.
//
// Unlike Division, decoding a Party never fails: codes outside the known set
// resolve to NAFD, the zero value.
type Party int

const (
	NAFD Party = iota // Non Affiliated, also used for any unrecognised code
	LP                // Liberal
	LNP               // Liberal National Party of Queensland
	NP                // The Nationals
	CLP               // Country Liberal Party (NT)
	ALP               // Australian Labor Party
	XEN               // Centre Alliance
	KAP               // Katter's Australian Party
	GRN               // The Greens
	UAPP              // United Australia Party
	IND               // Independent
	ON                // Pauline Hanson's One Nation
	LDP               // Liberal Democratic Party
	CYA               // Australian Federation Party
	AJP               // Animal Justice Party
	IMO               // Informed Medical Options Party
	GAP               // The Great Australian Party
	WAP               // Western Australia Party
	VNS               // Victorian Socialists
	AUC               // Australian Christians
	SOPA              // FUSION: Science, Pirate, Secular, Climate Emergency
	CEC               // Australian Citizens Party
	TNL               // TNL
	DHJP              // Derryn Hinch's Justice Party
	SAL               // Socialist Alliance
	AUVA              // Australian Values Party
	JLN               // Jacqui Lambie Network
	ASP               // Shooters, Fishers and Farmers Party
	IAP               // Indigenous - Aboriginal Party of Australia
	SPP               // Sustainable Australia Party
	AUP               // Australian Progressives
	DPDA              // Drew Pavlou Democratic Alliance
	TLOC              // The Local Party of Australia
	AUD               // Australian Democrats
	HMP               // Legalise Cannabis Australia
	REAS              // Reason Australia

	partyEnd
)

var partyCodes = [...]string{
	NAFD: "NAFD", LP: "LP", LNP: "LNP", NP: "NP", CLP: "CLP", ALP: "ALP", XEN: "XEN",
	KAP: "KAP", GRN: "GRN", UAPP: "UAPP", IND: "IND", ON: "ON", LDP: "LDP", CYA: "CYA",
	AJP: "AJP", IMO: "IMO", GAP: "GAP", WAP: "WAP", VNS: "VNS", AUC: "AUC", SOPA: "SOPA",
	CEC: "CEC", TNL: "TNL", DHJP: "DHJP", SAL: "SAL", AUVA: "AUVA", JLN: "JLN", ASP: "ASP",
	IAP: "IAP", SPP: "SPP", AUP: "AUP", DPDA: "DPDA", TLOC: "TLOC", AUD: "AUD", HMP: "HMP",
	REAS: "REAS",
}

var partyByCode = func() map[string]Party {
	m := make(map[string]Party, len(partyCodes))
	for p := NAFD; p < partyEnd; p++ {
		m[partyCodes[p]] = p
	}
	return m
}()

// LookupParty matches code exactly against the known party codes.
func LookupParty(code string) (Party, bool) {
	p, ok := partyByCode[code]
	return p, ok
}

// DecodeParty resolves a party code, falling back to NAFD when the code is
// not recognised. Fallbacks are logged at trace level so new parties can be
// picked up from the logs.
func DecodeParty(ctx context.Context, code string) Party {
	if p, ok := LookupParty(code); ok {
		return p
	}
	logging.Trace(ctx, "party not identified, using NAFD", "party", code)
	return NAFD
}

// Less orders parties by code.
func (p Party) Less(q Party) bool {
	return p.String() < q.String()
}

func (p Party) String() string {
	if p < 0 || p >= partyEnd {
		return fmt.Sprintf("Party(%d)", int(p))
	}
	return partyCodes[p]
}

// MarshalText encodes the party by its code.
func (p Party) MarshalText() ([]byte, error) {
	if p < 0 || p >= partyEnd {
		return nil, fmt.Errorf("marshal party: invalid value %d", int(p))
	}
	return []byte(partyCodes[p]), nil
}

// UnmarshalText decodes a party code, falling back to NAFD like DecodeParty.
func (p *Party) UnmarshalText(text []byte) error {
	*p = DecodeParty(context.Background(), string(text))
	return nil
}
