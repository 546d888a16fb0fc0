// Package http exposes the landing page builder over JSON and serves
// published pages as HTML.
//
// Routes mount under the configured API base (default /api):
//   - Builder: /page-builder/sections, /page-builder/pages, /page-builder/slug/{slug},
//     /page-builder/{id}, /page-builder/{id}/duplicate
//   - Stored sections: /sections, /sections/statistics, /sections/update-order,
//     /sections/type/{type}, /sections/page/{pageId}, /sections/{id},
//     /sections/{id}/duplicate, /sections/{id}/toggle-status
//   - Orders: /orders, /orders/statistics, /orders/{id}, and the legacy /order
//   - Domains: /domains, /domains/{id}, /domain-lookup
//   - Section types: /section-types, /section-types/{id}
//
// Published pages render at /view/{slug}. Every JSON response uses the
// envelope {success, data, message, errors}.
package http
