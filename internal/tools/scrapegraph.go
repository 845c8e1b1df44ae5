package tools

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sells-group/scrapegraph-mcp/pkg/scrapegraph"
)

// errNotInitialized is returned by every tool when no API key was configured
// at startup. The process stays up so the assistant gets an explanation
// instead of a dead server.
const errNotInitialized = "ScrapeGraph client not initialized. Please provide an API key."

// RegisterScrapeGraph registers the ScrapeGraphAI tool set. The client may be
// nil when no API key was configured; every tool then short-circuits with a
// fixed error result and performs no network call.
func RegisterScrapeGraph(reg *Registry, client scrapegraph.Client) {
	reg.Register(Tool{
		Def: mcp.NewTool("markdownify",
			mcp.WithDescription("Convert a webpage into clean, formatted markdown."),
			mcp.WithString("website_url",
				mcp.Required(),
				mcp.Description("URL of the webpage to convert"),
			),
		),
		Handle: guard(client, markdownify),
	})

	reg.Register(Tool{
		Def: mcp.NewTool("smartscraper",
			mcp.WithDescription("Extract structured data from a webpage using AI."),
			mcp.WithString("user_prompt",
				mcp.Required(),
				mcp.Description("Instructions for what data to extract"),
			),
			mcp.WithString("website_url",
				mcp.Required(),
				mcp.Description("URL of the webpage to scrape"),
			),
			mcp.WithNumber("number_of_scrolls",
				mcp.Description("Number of infinite scrolls to perform before extracting"),
			),
			mcp.WithBoolean("markdown_only",
				mcp.Description("Return raw markdown instead of AI-extracted data"),
			),
		),
		Handle: guard(client, smartScraper),
	})

	reg.Register(Tool{
		Def: mcp.NewTool("searchscraper",
			mcp.WithDescription("Perform AI-powered web searches with structured results."),
			mcp.WithString("user_prompt",
				mcp.Required(),
				mcp.Description("Search query or instructions"),
			),
			mcp.WithNumber("num_results",
				mcp.Description("Number of websites to consider"),
			),
			mcp.WithNumber("number_of_scrolls",
				mcp.Description("Number of infinite scrolls to perform on each website"),
			),
		),
		Handle: guard(client, searchScraper),
	})

	reg.Register(Tool{
		Def: mcp.NewTool("smartcrawler_initiate",
			mcp.WithDescription("Start an asynchronous multi-page crawl. Returns a request_id; "+
				"poll smartcrawler_fetch_results with it until status is \"completed\"."),
			mcp.WithString("url",
				mcp.Required(),
				mcp.Description("Starting URL for the crawl"),
			),
			mcp.WithString("extraction_mode",
				mcp.Required(),
				mcp.Description("\"ai\" for AI extraction (requires prompt), \"markdown\" for markdown conversion"),
				mcp.Enum(scrapegraph.ExtractionModeAI, scrapegraph.ExtractionModeMarkdown),
			),
			mcp.WithString("prompt",
				mcp.Description("Extraction instructions, required when extraction_mode is \"ai\""),
			),
			mcp.WithNumber("depth",
				mcp.Description("Maximum link depth to follow"),
			),
			mcp.WithNumber("max_pages",
				mcp.Description("Maximum number of pages to crawl"),
			),
			mcp.WithBoolean("same_domain_only",
				mcp.Description("Restrict the crawl to the starting domain"),
			),
		),
		Handle: guard(client, crawlInitiate),
	})

	reg.Register(Tool{
		Def: mcp.NewTool("smartcrawler_fetch_results",
			mcp.WithDescription("Fetch status and results of a crawl started with smartcrawler_initiate. "+
				"Performs a single status read; call again until status is \"completed\"."),
			mcp.WithString("request_id",
				mcp.Required(),
				mcp.Description("Request ID returned by smartcrawler_initiate"),
			),
		),
		Handle: guard(client, crawlFetchResults),
	})
}

// guard wraps a handler with the shared preconditions: a constructed client
// and a failure boundary that folds every error into the Result union.
func guard(client scrapegraph.Client, fn func(ctx context.Context, client scrapegraph.Client, args map[string]any) Result) Handler {
	return func(ctx context.Context, args map[string]any) Result {
		if client == nil {
			return Error(errNotInitialized)
		}
		return fn(ctx, client, args)
	}
}

// toResult converts a client error to the error variant. A remote *APIError
// surfaces with its exact "Error {code}: {body}" text, stripped of any wrap
// context, because assistants match on that format.
func toResult(raw []byte, err error) Result {
	if err != nil {
		var apiErr *scrapegraph.APIError
		if errors.As(err, &apiErr) {
			return Error(apiErr.Error())
		}
		return Error(err.Error())
	}
	return OK(raw)
}

func markdownify(ctx context.Context, client scrapegraph.Client, args map[string]any) Result {
	websiteURL, err := stringArg(args, "website_url")
	if err != nil {
		return Error(err.Error())
	}
	raw, err := client.Markdownify(ctx, scrapegraph.MarkdownifyRequest{WebsiteURL: websiteURL})
	return toResult(raw, err)
}

func smartScraper(ctx context.Context, client scrapegraph.Client, args map[string]any) Result {
	userPrompt, err := stringArg(args, "user_prompt")
	if err != nil {
		return Error(err.Error())
	}
	websiteURL, err := stringArg(args, "website_url")
	if err != nil {
		return Error(err.Error())
	}
	scrolls, err := optIntArg(args, "number_of_scrolls")
	if err != nil {
		return Error(err.Error())
	}
	markdownOnly, err := optBoolArg(args, "markdown_only")
	if err != nil {
		return Error(err.Error())
	}

	raw, err := client.SmartScraper(ctx, scrapegraph.SmartScraperRequest{
		UserPrompt:      userPrompt,
		WebsiteURL:      websiteURL,
		NumberOfScrolls: scrolls,
		MarkdownOnly:    markdownOnly,
	})
	return toResult(raw, err)
}

func searchScraper(ctx context.Context, client scrapegraph.Client, args map[string]any) Result {
	userPrompt, err := stringArg(args, "user_prompt")
	if err != nil {
		return Error(err.Error())
	}
	numResults, err := optIntArg(args, "num_results")
	if err != nil {
		return Error(err.Error())
	}
	scrolls, err := optIntArg(args, "number_of_scrolls")
	if err != nil {
		return Error(err.Error())
	}

	raw, err := client.SearchScraper(ctx, scrapegraph.SearchScraperRequest{
		UserPrompt:      userPrompt,
		NumResults:      numResults,
		NumberOfScrolls: scrolls,
	})
	return toResult(raw, err)
}

func crawlInitiate(ctx context.Context, client scrapegraph.Client, args map[string]any) Result {
	url, err := stringArg(args, "url")
	if err != nil {
		return Error(err.Error())
	}
	mode, err := stringArg(args, "extraction_mode")
	if err != nil {
		return Error(err.Error())
	}
	prompt, err := optStringArg(args, "prompt")
	if err != nil {
		return Error(err.Error())
	}
	depth, err := optIntArg(args, "depth")
	if err != nil {
		return Error(err.Error())
	}
	maxPages, err := optIntArg(args, "max_pages")
	if err != nil {
		return Error(err.Error())
	}
	sameDomain, err := optBoolArg(args, "same_domain_only")
	if err != nil {
		return Error(err.Error())
	}

	raw, err := client.Crawl(ctx, scrapegraph.CrawlRequest{
		URL:            url,
		ExtractionMode: mode,
		Prompt:         prompt,
		Depth:          depth,
		MaxPages:       maxPages,
		SameDomainOnly: sameDomain,
	})
	return toResult(raw, err)
}

func crawlFetchResults(ctx context.Context, client scrapegraph.Client, args map[string]any) Result {
	requestID, err := stringArg(args, "request_id")
	if err != nil {
		return Error(err.Error())
	}
	raw, err := client.GetCrawlStatus(ctx, requestID)
	return toResult(raw, err)
}
