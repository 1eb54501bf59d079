// Command advisor runs one prediction and renders the farmer-facing
// advisory report to stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"cropadvisor/domain/advisory"
	"cropadvisor/internal/config"
	"cropadvisor/internal/container"
	"cropadvisor/internal/explain"
)

func main() {
	place := flag.String("place", "ranipet", "village or district name as the farmer would say it")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	c, err := container.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create container: %v", err)
	}
	if err := c.Load(context.Background()); err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	defer c.Close()

	result, err := c.Advisor.Predict(context.Background(), advisory.PredictionRequest{District: *place})
	if err != nil {
		log.Fatalf("Prediction failed: %v", err)
	}
	explanation := explain.Explain(result, c.Classifier.FeatureImportance())

	printReport(*place, result, explanation)
}

func printReport(place string, r *advisory.PredictionResult, exp explain.Explanation) {
	rule := strings.Repeat("=", 72)
	line := strings.Repeat("-", 72)

	fmt.Println("\n" + rule)
	fmt.Println("SMART CROP ADVISORY REPORT")
	fmt.Println(rule)

	fmt.Println("\nLOCATION & CONTEXT")
	fmt.Println(line)
	fmt.Printf("Village / Area Provided : %s\n", title(place))
	fmt.Printf("Resolved District       : %s\n", title(r.Location.ResolvedDistrict))
	fmt.Printf("Resolution Method       : %s\n", r.Location.Method)
	fmt.Printf("Season                  : %s\n", r.Season)
	fmt.Printf("Agro-Climatic Zone      : %s\n", zoneLabel(r))
	fmt.Printf("Vegetation Index (NDVI) : %.3f\n", r.NDVI)
	fmt.Printf("Data Confidence         : %s (within ~%d km)\n", r.Trust.Trust, r.Trust.RadiusKm)

	fmt.Println("\nCROP SUITABILITY (TOP 3)")
	fmt.Println(line)
	for i, crop := range r.TopCrops {
		fmt.Printf("%d. %-12s | Suitability Score : %.3f\n", i+1, crop, r.TopProbs[i])
	}
	fmt.Printf("\nOverall Confidence : %s\n", r.TopConfidence)
	fmt.Printf("Safe Mode Enabled  : %s\n", yesNo(r.SafeMode))

	fmt.Println("\nSOIL HEALTH (INFERRED, NOT ASSUMED)")
	fmt.Println(line)
	fmt.Printf("Nitrogen   : %s\n", r.SoilHealth.Nitrogen)
	fmt.Printf("Phosphorus : %s\n", r.SoilHealth.Phosphorus)
	fmt.Printf("Potassium  : %s\n", r.SoilHealth.Potassium)
	fmt.Printf("Overall    : %s\n", r.SoilHealth.Overall)
	fmt.Printf("Soil Behavior Pattern : %s\n", r.SoilBehavior)
	fmt.Println("Note: soil health is inferred from nearby historical soil statistics")
	fmt.Println("      and vegetation signals, not assumed or manually entered.")

	fmt.Println("\nFERTILIZER GUIDANCE (RULE-BASED, OPTIONAL)")
	fmt.Println(line)
	fmt.Printf("Suggested Fertilizer : %s\n", r.Fertilizer.Fertilizer)
	fmt.Printf("Suggested Quantity   : %d kg / acre\n", r.Fertilizer.RateKgAcre)
	fmt.Printf("Reason               : %s\n", r.Fertilizer.Logic)
	fmt.Println("Note                 : Guidance only. Not a mandatory instruction.")

	fmt.Println("\nMARKET AWARENESS (INFORMATION ONLY)")
	fmt.Println(line)
	fmt.Println("The market shown below is NOT your village market. It is a nearby")
	fmt.Println("high-volume reference market inferred from crop trade patterns and")
	fmt.Println("agro-climatic similarity. Awareness only, not a selling recommendation.")
	fmt.Printf("\nReference Market : %s\n", r.Market.Market)
	fmt.Printf("Market Trend     : %s\n", r.Market.Trend)
	fmt.Printf("Explanation      : %s\n", r.Market.Note)

	fmt.Println("\nWHY THIS WAS RECOMMENDED")
	fmt.Println(line)
	for i, reason := range exp.Reasons {
		fmt.Printf("%d. %s\n", i+1, reason)
	}
	if len(exp.TopFactors) > 0 {
		fmt.Printf("Key model factors: %s\n", strings.Join(exp.TopFactors, ", "))
	}
	fmt.Printf("System note: %s\n", exp.SystemNote)

	fmt.Println("\n" + rule)
	fmt.Println("END OF ADVISORY REPORT")
	fmt.Println(rule)
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}

func zoneLabel(r *advisory.PredictionResult) string {
	if !r.Zone.Known() {
		return "UNMAPPED"
	}
	return string(r.Zone)
}
