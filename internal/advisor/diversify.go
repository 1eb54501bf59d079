package advisor

import (
	"sort"
	"strings"

	"cropadvisor/domain/agro"
)

// DominanceMargin is the top-1 lead over top-2 above which the classifier
// order is trusted outright and no re-ranking happens.
const DominanceMargin = 0.15

// Diversify re-ranks the top crops to avoid monoculture dominance. When the
// classifier is not decisively ahead, crops on the zone's bias list move to
// the front; ties keep probability-descending order. Membership of the top
// set never changes, only its order. Unknown zones have an empty bias list,
// so the input order survives untouched.
func Diversify(crops []string, probs []float64, zone agro.Zone) ([]string, []float64) {
	outCrops := append([]string(nil), crops...)
	outProbs := append([]float64(nil), probs...)
	if len(outCrops) < 2 || outProbs[0]-outProbs[1] >= DominanceMargin {
		return outCrops, outProbs
	}

	bias := make(map[string]bool)
	for _, c := range agro.BiasCrops(zone) {
		bias[strings.ToLower(c)] = true
	}

	order := make([]int, len(outCrops))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		ba := bias[strings.ToLower(outCrops[ia])]
		bb := bias[strings.ToLower(outCrops[ib])]
		if ba != bb {
			return ba
		}
		return outProbs[ia] > outProbs[ib]
	})

	rankedCrops := make([]string, len(order))
	rankedProbs := make([]float64, len(order))
	for i, idx := range order {
		rankedCrops[i] = outCrops[idx]
		rankedProbs[i] = outProbs[idx]
	}
	return rankedCrops, rankedProbs
}
