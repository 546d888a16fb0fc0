package catalog

import "github.com/goliatone/go-landing/internal/identity"

const (
	TypeHero            = "hero"
	TypeProductShowcase = "product_showcase"
	TypeTestimonial     = "testimonial"
	TypeNewsletter      = "newsletter"
	TypeImageText       = "image_text"
	TypeFeatureGrid     = "feature_grid"
	TypeCTA             = "cta"
	TypeProductDetails  = "product_details"
	TypeOrderForm       = "order_form"
	TypeSwiperSlider    = "swiper_slider"
)

const heroImage = "https://images.pexels.com/photos/3184291/pexels-photo-3184291.jpeg?auto=compress&cs=tinysrgb&w=600"

// Defaults returns the canonical section types shipped with the builder.
// The editor sidebar and the database seeder both read from here.
func Defaults() []Descriptor {
	descriptors := []Descriptor{
		{
			Type:        TypeHero,
			Name:        "Hero Banner",
			Description: "Eye-catching header section",
			Icon:        "bi-star",
			Thumbnail:   "/thumbnails/hero.jpg",
			DefaultData: map[string]any{
				"title":               "Welcome to Our Amazing Store",
				"subtitle":            "Discover premium products at unbeatable prices",
				"primaryButtonText":   "Shop Now",
				"secondaryButtonText": "Learn More",
				"image":               heroImage,
			},
		},
		{
			Type:        TypeProductShowcase,
			Name:        "Product Showcase",
			Description: "Display featured products",
			Icon:        "bi-grid",
			Thumbnail:   "/thumbnails/products.jpg",
			DefaultData: map[string]any{
				"title":    "Featured Products",
				"subtitle": "Discover our best-selling items",
			},
		},
		{
			Type:        TypeTestimonial,
			Name:        "Testimonials",
			Description: "Customer reviews and feedback",
			Icon:        "bi-chat-quote",
			Thumbnail:   "/thumbnails/testimonials.jpg",
			DefaultData: map[string]any{
				"title":    "What Our Customers Say",
				"subtitle": "Real reviews from real customers",
			},
		},
		{
			Type:        TypeNewsletter,
			Name:        "Newsletter Signup",
			Description: "Email subscription form",
			Icon:        "bi-envelope",
			Thumbnail:   "/thumbnails/newsletter.jpg",
			DefaultData: map[string]any{
				"title":      "Stay Updated",
				"subtitle":   "Subscribe to our newsletter for the latest updates",
				"buttonText": "Subscribe",
			},
		},
		{
			Type:        TypeImageText,
			Name:        "Image + Text",
			Description: "Content section with image",
			Icon:        "bi-image",
			Thumbnail:   "/thumbnails/image-text.jpg",
			DefaultData: map[string]any{
				"title":         "About Our Company",
				"content":       "We are dedicated to providing the best products and services to our customers.",
				"buttonText":    "Learn More",
				"imagePosition": "left",
			},
		},
		{
			Type:        TypeFeatureGrid,
			Name:        "Feature Grid",
			Description: "Highlight key features",
			Icon:        "bi-grid-3x3",
			Thumbnail:   "/thumbnails/features.jpg",
			DefaultData: map[string]any{
				"title":    "Why Choose Us",
				"subtitle": "Discover what makes us special",
			},
		},
		{
			Type:        TypeCTA,
			Name:        "Call to Action",
			Description: "Conversion-focused section",
			Icon:        "bi-megaphone",
			Thumbnail:   "/thumbnails/cta.jpg",
			DefaultData: map[string]any{
				"title":               "Ready to Get Started?",
				"subtitle":            "Join thousands of satisfied customers today",
				"primaryButtonText":   "Get Started",
				"secondaryButtonText": "Learn More",
			},
		},
		{
			Type:        TypeProductDetails,
			Name:        "Product Details",
			Description: "Detailed product showcase",
			Icon:        "bi-box-seam",
			Thumbnail:   "/thumbnails/product-details.jpg",
			DefaultData: map[string]any{
				"title":       "Premium Wireless Headphones",
				"price":       "$199.99",
				"description": "Experience crystal-clear audio with premium features",
				"buttonText":  "Add to Cart",
			},
		},
		{
			Type:        TypeOrderForm,
			Name:        "Order Form",
			Description: "Customer order submission",
			Icon:        "bi-clipboard-check",
			Thumbnail:   "/thumbnails/order-form.jpg",
			DefaultData: map[string]any{
				"title":      "Place Your Order",
				"subtitle":   "Fill out the form below to complete your purchase",
				"buttonText": "Submit Order",
			},
		},
		{
			Type:        TypeSwiperSlider,
			Name:        "Swiper Slider",
			Description: "Interactive image slider with navigation",
			Icon:        "bi-images",
			Thumbnail:   "/thumbnails/swiper.jpg",
			DefaultData: map[string]any{
				"slides": []any{
					map[string]any{
						"id":         1,
						"title":      "Premium Quality Products",
						"subtitle":   "Discover our exclusive collection",
						"image":      "https://images.pexels.com/photos/3184291/pexels-photo-3184291.jpeg?auto=compress&cs=tinysrgb&w=800",
						"buttonText": "Shop Now",
					},
				},
			},
		},
	}
	for i := range descriptors {
		descriptors[i].ID = identity.SectionTypeUUID(descriptors[i].Type)
		descriptors[i].SortOrder = i + 1
		descriptors[i].IsActive = true
	}
	return descriptors
}
