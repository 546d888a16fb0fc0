package render

import (
	"github.com/goliatone/go-landing/internal/document"
	"github.com/goliatone/go-landing/internal/util"
)

// Built-in item lists shown while a list section has no items of its own.

var defaultSlides = []map[string]any{
	{
		"id":         1,
		"title":      "Premium Quality Products",
		"subtitle":   "Discover our exclusive collection",
		"image":      "https://images.pexels.com/photos/3184291/pexels-photo-3184291.jpeg?auto=compress&cs=tinysrgb&w=800",
		"buttonText": "Shop Now",
	},
	{
		"id":         2,
		"title":      "Fast & Free Shipping",
		"subtitle":   "Get your orders delivered quickly",
		"image":      "https://images.pexels.com/photos/3184360/pexels-photo-3184360.jpeg?auto=compress&cs=tinysrgb&w=800",
		"buttonText": "Learn More",
	},
	{
		"id":         3,
		"title":      "24/7 Customer Support",
		"subtitle":   "We are here to help you anytime",
		"image":      "https://images.pexels.com/photos/3184465/pexels-photo-3184465.jpeg?auto=compress&cs=tinysrgb&w=800",
		"buttonText": "Contact Us",
	},
}

var defaultProducts = []map[string]any{
	{
		"id":          1,
		"name":        "Premium Product",
		"price":       "$99.99",
		"image":       "https://images.pexels.com/photos/90946/pexels-photo-90946.jpeg?auto=compress&cs=tinysrgb&w=400",
		"description": "High-quality product description",
	},
	{
		"id":          2,
		"name":        "Best Seller",
		"price":       "$149.99",
		"image":       "https://images.pexels.com/photos/279906/pexels-photo-279906.jpeg?auto=compress&cs=tinysrgb&w=400",
		"description": "Popular choice among customers",
	},
	{
		"id":          3,
		"name":        "New Arrival",
		"price":       "$79.99",
		"image":       "https://images.pexels.com/photos/1649771/pexels-photo-1649771.jpeg?auto=compress&cs=tinysrgb&w=400",
		"description": "Latest addition to our collection",
	},
}

var defaultTestimonials = []map[string]any{
	{
		"id":      1,
		"name":    "Sarah Johnson",
		"role":    "Happy Customer",
		"content": "Amazing product quality and excellent customer service. Highly recommended!",
		"avatar":  "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg?auto=compress&cs=tinysrgb&w=150",
	},
	{
		"id":      2,
		"name":    "Mike Chen",
		"role":    "Verified Buyer",
		"content": "Fast shipping and exactly as described. Will definitely order again.",
		"avatar":  "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=150",
	},
	{
		"id":      3,
		"name":    "Emily Davis",
		"role":    "Regular Customer",
		"content": "Outstanding value for money. The quality exceeded my expectations.",
		"avatar":  "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg?auto=compress&cs=tinysrgb&w=150",
	},
}

var defaultFeatures = []map[string]any{
	{"id": 1, "icon": "bi-lightning-charge", "title": "Fast Performance", "description": "Lightning-fast loading times and smooth user experience"},
	{"id": 2, "icon": "bi-shield-check", "title": "Secure & Safe", "description": "Enterprise-grade security to protect your data"},
	{"id": 3, "icon": "bi-people", "title": "24/7 Support", "description": "Round-the-clock customer support when you need it"},
	{"id": 4, "icon": "bi-graph-up", "title": "Analytics", "description": "Detailed insights and analytics to track your progress"},
	{"id": 5, "icon": "bi-phone", "title": "Mobile Ready", "description": "Fully responsive design that works on all devices"},
	{"id": 6, "icon": "bi-cloud", "title": "Cloud Storage", "description": "Secure cloud storage with automatic backups"},
}

var defaultProductFeatures = []map[string]any{
	{"label": "Active Noise Cancellation"},
	{"label": "30-Hour Battery Life"},
	{"label": "Premium Comfort Padding"},
	{"label": "Bluetooth 5.0 Connectivity"},
	{"label": "Quick Charge Technology"},
}

// DefaultItems returns a copy of the built-in list for a variant list field.
// typeKey may use a built-in alias.
func DefaultItems(typeKey, list string) []map[string]any {
	key := normalizeKey(typeKey)
	if alias, ok := builtinAliases()[key]; ok {
		key = alias
	}
	v, ok := builtinSpecs()[key]
	if !ok {
		return nil
	}
	return cloneItems(v.lists[list])
}

// itemsOrDefault returns the items stored under list, or the fallback when
// the list holds no objects. Stored items keep their positions; elements
// that are not objects come back as nil and are skipped by the templates.
func itemsOrDefault(data map[string]any, list string, fallback []map[string]any) []map[string]any {
	items, ok := document.ObjectItems(data[list])
	if !ok {
		return cloneItems(fallback)
	}
	return items
}

func cloneItems(items []map[string]any) []map[string]any {
	if items == nil {
		return nil
	}
	out := make([]map[string]any, len(items))
	for i, item := range items {
		out[i] = util.DeepCloneMap(item)
	}
	return out
}
