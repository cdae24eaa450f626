package main

import "sort"

// This file implements the luggage-suggestion heuristic: a greedy,
// largest-first capacity estimate, deliberately not a bin-packing optimizer.
// The greedy behavior (fewer, larger bags first) is the contract.

// luggageCapacity assigns each size class a fixed nominal number of item
// slots. The numbers only feed the suggestion heuristic; they are not
// physical volumes.
var luggageCapacity = map[string]int{
	LuggageSmall:  15,
	LuggageMedium: 30,
	LuggageLarge:  50,
}

// undersizedLuggageWarning is the exact copy shown when selected luggage
// falls short of the estimated need.
const undersizedLuggageWarning = "Your selected luggage might be too small for this trip. Consider a larger bag."

// luggageSlackFactor discounts the item count before comparing against
// capacity: not every packed item consumes a full capacity slot.
const luggageSlackFactor = 0.7

// SuggestLuggage picks a subset of the user's luggage expected to cover
// totalItemCount, preferring larger bags. Bags incompatible with the
// transport mode are never suggested. The caller's catalog is left untouched;
// sorting happens on a copy.
func SuggestLuggage(luggage []LuggageItem, transportMode string, totalItemCount int) []LuggageItem {
	if totalItemCount <= 0 {
		return []LuggageItem{}
	}

	compatible := []LuggageItem{}
	for _, bag := range luggage {
		for _, mode := range bag.TransportModes {
			if mode == transportMode {
				compatible = append(compatible, bag)
				break
			}
		}
	}
	if len(compatible) == 0 {
		return []LuggageItem{}
	}

	// Stable sort keeps catalog order among equal-capacity bags.
	sort.SliceStable(compatible, func(i, j int) bool {
		return luggageCapacity[compatible[i].Size] > luggageCapacity[compatible[j].Size]
	})

	suggestions := []LuggageItem{}
	remaining := totalItemCount
	for _, bag := range compatible {
		if remaining <= 0 {
			break
		}
		suggestions = append(suggestions, bag)
		remaining -= luggageCapacity[bag.Size]
	}
	return suggestions
}

// UndersizedLuggageWarning returns a warning message when the selected bags'
// combined capacity falls below 70% of the item count, and "" otherwise. The
// boundary is strict: exactly 70% capacity does not warn.
func UndersizedLuggageWarning(selected []LuggageItem, totalItemCount int) string {
	totalCapacity := 0
	for _, bag := range selected {
		totalCapacity += luggageCapacity[bag.Size]
	}
	if float64(totalCapacity) < float64(totalItemCount)*luggageSlackFactor {
		return undersizedLuggageWarning
	}
	return ""
}
