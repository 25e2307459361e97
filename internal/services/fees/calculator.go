// Package fees computes the per-document service and OPG registration fees.
// It is pure: no persistence, no error conditions, integer pence throughout.
package fees

import "lpaflow/internal/models"

// Fee amounts in pence.
const (
	OurFeePerLpaPence  int64 = 9900
	OpgFeeFullPence    int64 = 8200
	OpgFeeReducedPence int64 = 4100
	OpgFeeExemptPence  int64 = 0
)

// DocumentInput is the slice of an LPA document the calculator needs.
type DocumentInput struct {
	DocumentID string
	DonorID    string
	DonorName  string
	LpaType    string
}

// LineFee is the fee breakdown for one document.
type LineFee struct {
	LpaDocumentID string `json:"lpa_document_id"`
	DonorID       string `json:"donor_id"`
	DonorName     string `json:"donor_name"`
	LpaType       string `json:"lpa_type"`
	OurFeePence   int64  `json:"our_fee_pence"`
	OpgFeeTier    string `json:"opg_fee_tier"`
	OpgFeePence   int64  `json:"opg_fee_pence"`
}

// Quote aggregates the fees for every document under an application.
type Quote struct {
	OurFeePence int64     `json:"our_fee_pence"`
	OpgFeePence int64     `json:"opg_fee_pence"`
	TotalPence  int64     `json:"total_pence"`
	Breakdown   []LineFee `json:"breakdown"`
}

// OpgFeeForTier resolves the OPG registration fee for a donor's tier.
// Unrecognized or missing tiers charge the full rate.
func OpgFeeForTier(tier string) int64 {
	switch tier {
	case models.FeeTierExempt:
		return OpgFeeExemptPence
	case models.FeeTierReduced:
		return OpgFeeReducedPence
	default:
		return OpgFeeFullPence
	}
}

// ResolveTier looks up a donor's assessed tier, defaulting to full when the
// donor has no assessment.
func ResolveTier(tierByDonor map[string]string, donorID string) string {
	if tier, ok := tierByDonor[donorID]; ok && tier != "" {
		return tier
	}
	return models.FeeTierFull
}

// Calculate produces the fee breakdown and totals for a set of documents.
// tierByDonor maps donor id to assessed fee tier; absent donors pay full.
func Calculate(docs []DocumentInput, tierByDonor map[string]string) Quote {
	quote := Quote{Breakdown: make([]LineFee, 0, len(docs))}

	for _, doc := range docs {
		tier := ResolveTier(tierByDonor, doc.DonorID)
		opgFee := OpgFeeForTier(tier)

		quote.Breakdown = append(quote.Breakdown, LineFee{
			LpaDocumentID: doc.DocumentID,
			DonorID:       doc.DonorID,
			DonorName:     doc.DonorName,
			LpaType:       doc.LpaType,
			OurFeePence:   OurFeePerLpaPence,
			OpgFeeTier:    tier,
			OpgFeePence:   opgFee,
		})

		quote.OurFeePence += OurFeePerLpaPence
		quote.OpgFeePence += opgFee
	}

	quote.TotalPence = quote.OurFeePence + quote.OpgFeePence
	return quote
}
