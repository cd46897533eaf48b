package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/octobees/lead-finder/internal/dto"
)

func newSearchCmd() *cobra.Command {
	var req dto.SearchRequest

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search for businesses without a website",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := resolveServices(cmd.Context())
			if err != nil {
				return err
			}
			resp, err := svc.leads.Search(cmd.Context(), req)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().StringVar(&req.Niche, "niche", "", "business category, e.g. plumbers")
	cmd.Flags().StringVar(&req.Location, "location", "", "city or area to search")
	cmd.Flags().StringVar(&req.APIKey, "api-key", "", "places API key (defaults to GOOGLE_MAPS_API_KEY)")
	cmd.Flags().BoolVar(&req.DeepScan, "deep", false, "fan the search out over query variations and districts")
	_ = cmd.MarkFlagRequired("niche")
	_ = cmd.MarkFlagRequired("location")
	return cmd
}

func newEnrichCmd() *cobra.Command {
	var req dto.EnrichRequest

	cmd := &cobra.Command{
		Use:   "enrich",
		Short: "Look up the owner of a business",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := resolveServices(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), svc.enrich.Enrich(cmd.Context(), req))
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "business name")
	cmd.Flags().StringVar(&req.Address, "address", "", "business address or location")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newGenerateCmd() *cobra.Command {
	var req dto.GenerateSiteRequest

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a landing page for a business",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := resolveServices(cmd.Context())
			if err != nil {
				return err
			}
			resp, err := svc.sites.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().StringVar(&req.BusinessName, "name", "", "business name")
	cmd.Flags().StringVar(&req.Niche, "niche", "", "business category")
	cmd.Flags().StringVar(&req.Location, "location", "", "business location")
	cmd.Flags().StringVar(&req.Provider, "provider", "openai", "openai or gemini")
	cmd.Flags().StringVar(&req.AIAPIKey, "ai-key", "", "API key for the chosen provider")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
