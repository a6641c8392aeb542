// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import "sitekit/internal/models"

// Category identifiers.
const (
	CategoryBusiness   = "business"
	CategoryRestaurant = "restaurant"
	CategorySaaS       = "saas"
	CategoryPortfolio  = "portfolio"
	CategoryBlog       = "blog"
	CategoryEcommerce  = "ecommerce"
)

var builtinCategories = []models.Category{
	{ID: CategoryBusiness, Name: "Business", Description: "Corporate and professional service sites", Icon: "briefcase"},
	{ID: CategoryRestaurant, Name: "Restaurant", Description: "Menus, reservations and galleries for food venues", Icon: "utensils"},
	{ID: CategorySaaS, Name: "SaaS", Description: "Product landing pages with pricing and sign-up", Icon: "rocket"},
	{ID: CategoryPortfolio, Name: "Portfolio", Description: "Showcases for designers, photographers and studios", Icon: "palette"},
	{ID: CategoryBlog, Name: "Blog", Description: "Writing-first sites with posts and newsletters", Icon: "pen"},
	{ID: CategoryEcommerce, Name: "E-commerce", Description: "Storefronts with product listings and checkout", Icon: "cart"},
}

// builtinTemplates is the compiled-in catalog, in display order.
var builtinTemplates = []models.SiteTemplate{
	{
		ID:            "business_professional",
		Name:          "Business Professional",
		Category:      CategoryBusiness,
		Description:   "Clean corporate site for consultancies, law firms and agencies.",
		PreviewImage:  "/previews/business_professional.png",
		Industry:      "Professional Services",
		SetupTime:     "5 minutes",
		DemoURL:       "https://demo.sitekit.dev/business-professional",
		Popular:       true,
		Style:         "modern",
		ColorScheme:   "blue",
		Features:      []string{"user_login", "contact_form", "team_profiles", "testimonials"},
		BackendTokens: []string{"auth", "crud", "mail"},
		Pages:         []string{"home", "about", "services", "contact"},
		FrontendDSL: `ho(Your Company|nav:Home,About,Services,Contact)
mn(Home,About,Services,Contact)
hr(Professional Services|Expert solutions tailored to your business|cta:Get Started)
cd(Consulting|Strategy that moves Your Company forward)
cd(Advisory|Decisions backed by data)
cd(Support|A team that answers the phone)
tm(Our Team|Meet the people behind Your Company)
ts(What clients say|"Your Company changed how we work.")
ct(Contact Us|form:name,email,message)
ft(© y(2024) Your Company. All rights reserved.)`,
	},
	{
		ID:            "business_agency",
		Name:          "Creative Agency",
		Category:      CategoryBusiness,
		Description:   "Bold one-page layout for marketing and design agencies.",
		PreviewImage:  "/previews/business_agency.png",
		Industry:      "Marketing",
		SetupTime:     "10 minutes",
		DemoURL:       "https://demo.sitekit.dev/creative-agency",
		Popular:       false,
		Style:         "bold",
		ColorScheme:   "orange",
		Features:      []string{"contact_form", "case_studies", "newsletter"},
		BackendTokens: []string{"crud", "mail", "news"},
		Pages:         []string{"home", "work", "about", "contact"},
		FrontendDSL: `ho(Your Company|nav:Work,About,Contact)
hr(Professional Services|Campaigns people remember|cta:See Our Work)
gl(Case Studies|grid:3)
cd(Branding|Identity systems)
cd(Digital|Web and social)
ab(About Your Company|Independent since y(2024))
nl(Stay in the loop|email)
ft(© y(2024) Your Company)`,
	},
	{
		ID:            "restaurant_elegant",
		Name:          "Elegant Restaurant",
		Category:      CategoryRestaurant,
		Description:   "Warm, image-led site with menu, gallery and reservations.",
		PreviewImage:  "/previews/restaurant_elegant.png",
		Industry:      "Food & Beverage",
		SetupTime:     "8 minutes",
		DemoURL:       "https://demo.sitekit.dev/elegant-restaurant",
		Popular:       true,
		Style:         "elegant",
		ColorScheme:   "burgundy",
		Features:      []string{"online_reservations", "menu_display", "photo_gallery", "contact_form"},
		BackendTokens: []string{"book", "crud", "media", "mail"},
		Pages:         []string{"home", "menu", "gallery", "reservations", "contact"},
		FrontendDSL: `ho(Restaurant Name|nav:Menu,Gallery,Reservations,Contact)
hr(Fine Dining Experience|Seasonal cooking in the heart of the city|cta:Book a Table)
mu(Starters|Mains|Desserts)
gl(Gallery|grid:4)
rs(Reservations|form:date,time,guests)
ab(Our Story|Restaurant Name has served guests since y(2024))
ct(Find Us|map)
ft(© y(2024) Restaurant Name)`,
	},
	{
		ID:            "saas_landing",
		Name:          "SaaS Landing",
		Category:      CategorySaaS,
		Description:   "Conversion-focused product page with pricing tiers and sign-up.",
		PreviewImage:  "/previews/saas_landing.png",
		Industry:      "Software",
		SetupTime:     "5 minutes",
		DemoURL:       "https://demo.sitekit.dev/saas-landing",
		Popular:       true,
		Style:         "minimal",
		ColorScheme:   "indigo",
		Features:      []string{"user_login", "user_signup", "pricing_tables", "payments", "newsletter"},
		BackendTokens: []string{"auth", "pay", "mail", "news"},
		Pages:         []string{"home", "features", "pricing", "login", "signup"},
		FrontendDSL: `ho(Your SaaS|nav:Features,Pricing,Login)
hr(Build Something Amazing|Ship faster with Your SaaS|cta:Start Free Trial)
cd(Fast|Deploy in seconds)
cd(Secure|Built-in authentication)
cd(Scalable|Grows with your team)
pr(Starter:0|Pro:29|Team:99)
fq(FAQ|How does Your SaaS bill?)
nl(Product updates|email)
ft(© y(2024) Your SaaS, Inc.)`,
	},
	{
		ID:            "portfolio_creative",
		Name:          "Creative Portfolio",
		Category:      CategoryPortfolio,
		Description:   "Full-bleed gallery portfolio for photographers and designers.",
		PreviewImage:  "/previews/portfolio_creative.png",
		Industry:      "Creative",
		SetupTime:     "6 minutes",
		DemoURL:       "https://demo.sitekit.dev/creative-portfolio",
		Popular:       false,
		Style:         "artistic",
		ColorScheme:   "monochrome",
		Features:      []string{"photo_gallery", "contact_form", "testimonials"},
		BackendTokens: []string{"media", "mail"},
		Pages:         []string{"home", "gallery", "about", "contact"},
		FrontendDSL: `ho(Your Name|nav:Gallery,About,Contact)
hr(Creative Portfolio|Selected work by Your Name|cta:View Gallery)
gl(Selected Work|masonry)
ab(About Your Studio|Working worldwide since y(2024))
ts(Kind words|"A joy to work with.")
ct(Say Hello|form:name,email,message)
ft(© y(2024) Your Name)`,
	},
	{
		ID:            "blog_minimal",
		Name:          "Minimal Blog",
		Category:      CategoryBlog,
		Description:   "Typography-first blog with categories and newsletter sign-up.",
		PreviewImage:  "/previews/blog_minimal.png",
		Industry:      "Media",
		SetupTime:     "4 minutes",
		DemoURL:       "https://demo.sitekit.dev/minimal-blog",
		Popular:       false,
		Style:         "minimal",
		ColorScheme:   "slate",
		Features:      []string{"blog", "comments", "newsletter", "search"},
		BackendTokens: []string{"blog", "crud", "news", "search"},
		Pages:         []string{"home", "blog", "about"},
		FrontendDSL: `ho(Your Blog|nav:Blog,About)
hr(Thoughts & Stories|Notes on code, craft and everything between)
bl(Latest Posts|list:10)
sr(Search|posts)
ab(About Your Blog|Written by Your Name since y(2024))
nl(Subscribe|email)
ft(© y(2024) Your Blog)`,
	},
	{
		ID:            "ecommerce_store",
		Name:          "Online Store",
		Category:      CategoryEcommerce,
		Description:   "Storefront with product grid, cart and checkout.",
		PreviewImage:  "/previews/ecommerce_store.png",
		Industry:      "Retail",
		SetupTime:     "15 minutes",
		DemoURL:       "https://demo.sitekit.dev/online-store",
		Popular:       true,
		Style:         "modern",
		ColorScheme:   "green",
		Features:      []string{"user_login", "product_catalog", "shopping_cart", "payments", "search"},
		BackendTokens: []string{"auth", "shop", "pay", "search", "mail"},
		Pages:         []string{"home", "shop", "product", "cart", "checkout", "about"},
		FrontendDSL: `ho(Your Store|nav:Shop,About,Cart)
hr(Quality Products Delivered|Free shipping on orders over $50|cta:Shop Now)
pg(Featured Products|grid:4)
cd(Free Returns|30 days)
cd(Secure Checkout|All major cards)
ab(About Your Store|Family owned since y(2024))
ft(© y(2024) Your Store)`,
	},
}
